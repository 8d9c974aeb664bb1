package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	pgstore "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/store/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var usageInsert = regexp.QuoteMeta(`INSERT INTO "leave_usage"`) + `.*ON CONFLICT \("teacher_id"\) DO NOTHING`

func setupStore(t *testing.T) (*pgstore.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return pgstore.New(gdb, zap.NewNop()), mock
}

func TestLeaveCreate_AppliesUsageInOneTransaction(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "leaves"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(usageInsert).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_usage" WHERE teacher_id = $1`) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "casual_used", "sick_used", "duty_used", "other_used"}).
			AddRow(4, 1, 0, 2, 0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "leave_usage" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l := &leave.Leave{TeacherID: 1, LeaveType: "sick", Days: 3, Reason: "Medical appointment", Status: leave.StatusPending}
	err := store.Leaves().Create(context.Background(), l)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), l.ID)
	assert.False(t, l.SubmittedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveCreate_RollsBackWhenUsageFails(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "leaves"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(usageInsert).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Leaves().Create(context.Background(), &leave.Leave{TeacherID: 1, LeaveType: "sick", Days: 3})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveCreate_FirstLeaveCreatesUsageBeforeLocking(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "leaves"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(usageInsert).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_usage" WHERE teacher_id = $1`) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "casual_used", "sick_used", "duty_used", "other_used"}).
			AddRow(3, 5, 0, 0, 0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "leave_usage" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l := &leave.Leave{TeacherID: 5, LeaveType: "duty", Days: 2, Reason: "Exam invigilation", Status: leave.StatusPending}
	err := store.Leaves().Create(context.Background(), l)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageApply_ExistingRowIsLockedAndUpdated(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(usageInsert).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_usage" WHERE teacher_id = $1`) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "casual_used", "sick_used", "duty_used", "other_used"}).
			AddRow(2, 4, 1, 0, 0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "leave_usage" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u, err := store.Usage().Apply(context.Background(), 4, "casual", 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(2), u.ID)
	assert.Equal(t, 3, u.CasualUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveUpdate_UnknownID(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leaves" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	status := leave.StatusApproved
	_, err := store.Leaves().Update(context.Background(), 77, leave.Patch{Status: &status})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageFindByTeacher(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_usage" WHERE teacher_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "casual_used", "sick_used", "duty_used", "other_used"}).
			AddRow(1, 2, 7, 0, 1, 0))

	u, err := store.Usage().FindByTeacher(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 7, u.CasualUsed)
	assert.Equal(t, 1, u.DutyUsed)
}

func TestTeacherExists(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "teachers" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := store.Leaves().TeacherExists(context.Background(), 9)

	assert.NoError(t, err)
	assert.False(t, ok)
}
