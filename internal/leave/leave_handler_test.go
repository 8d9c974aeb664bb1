package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	leaveerrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave/errors"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn       func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn       func(ctx context.Context) ([]leave.LeaveResponse, error)
	getByIDFn      func(ctx context.Context, id uint) (leave.LeaveResponse, error)
	getByTeacherFn func(ctx context.Context, teacherID uint, leaveType string) ([]leave.LeaveResponse, error)
	updateFn       func(ctx context.Context, id uint, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id uint) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveService) GetByTeacher(ctx context.Context, teacherID uint, leaveType string) ([]leave.LeaveResponse, error) {
	return f.getByTeacherFn(ctx, teacherID, leaveType)
}
func (f *fakeLeaveService) Update(ctx context.Context, id uint, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	return f.updateFn(ctx, id, req)
}

func newLeaveRouter(svc leave.Service, write ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc), write...)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, uint(1), req.TeacherID)
				assert.Equal(t, 2, req.Days)
				return leave.LeaveResponse{ID: 1, TeacherID: 1, LeaveType: req.LeaveType, Days: req.Days, Status: "pending"}, nil
			},
		}
		r := newLeaveRouter(svc)

		w := doJSON(r, http.MethodPost, "/api/v1/leaves",
			`{"teacherId":1,"leaveType":"casual","startDate":"2024-03-04","endDate":"2024-03-05","days":2,"reason":"Family event"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"status":"pending"`)
	})

	t.Run("zero days rejected before service", func(t *testing.T) {
		r := newLeaveRouter(&fakeLeaveService{})

		w := doJSON(r, http.MethodPost, "/api/v1/leaves",
			`{"teacherId":1,"leaveType":"casual","startDate":"2024-03-04","endDate":"2024-03-05","days":0,"reason":"Family event"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "At least one day is required", env.Error.Message)
	})

	t.Run("non numeric teacher id", func(t *testing.T) {
		r := newLeaveRouter(&fakeLeaveService{})

		w := doJSON(r, http.MethodPost, "/api/v1/leaves",
			`{"teacherId":"abc","leaveType":"casual","startDate":"2024-03-04","endDate":"2024-03-05","days":1,"reason":"Family event"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidInput, decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("teacher not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrTeacherNotFound
			},
		}
		r := newLeaveRouter(svc)

		w := doJSON(r, http.MethodPost, "/api/v1/leaves",
			`{"teacherId":99,"leaveType":"sick","startDate":"2024-03-04","endDate":"2024-03-04","days":1,"reason":"Flu symptoms"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Teacher not found", decodeEnvelope(t, w.Body.Bytes()).Error.Message)
	})

	t.Run("guards run first", func(t *testing.T) {
		deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
		r := newLeaveRouter(&fakeLeaveService{}, deny)

		w := doJSON(r, http.MethodPost, "/api/v1/leaves", `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(r, http.MethodPatch, "/api/v1/leaves/1", `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_Reads(t *testing.T) {
	var gotType string
	svc := &fakeLeaveService{
		getAllFn: func(ctx context.Context) ([]leave.LeaveResponse, error) {
			return nil, nil
		},
		getByIDFn: func(ctx context.Context, id uint) (leave.LeaveResponse, error) {
			if id == 1 {
				return leave.LeaveResponse{ID: 1}, nil
			}
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		},
		getByTeacherFn: func(ctx context.Context, teacherID uint, leaveType string) ([]leave.LeaveResponse, error) {
			gotType = leaveType
			return []leave.LeaveResponse{{ID: 3, TeacherID: teacherID}}, nil
		},
	}
	r := newLeaveRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/v1/leaves", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(decodeEnvelope(t, w.Body.Bytes()).Data))

	w = doJSON(r, http.MethodGet, "/api/v1/leaves/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/leaves/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/leaves/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid leave ID", decodeEnvelope(t, w.Body.Bytes()).Error.Message)

	w = doJSON(r, http.MethodGet, "/api/v1/teachers/5/leaves?type=duty", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "duty", gotType)
	assert.Contains(t, w.Body.String(), `"teacherId":5`)

	w = doJSON(r, http.MethodGet, "/api/v1/teachers/abc/leaves", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaveHandler_Update(t *testing.T) {
	svc := &fakeLeaveService{
		updateFn: func(ctx context.Context, id uint, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
			if id != 1 {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			}
			return leave.LeaveResponse{ID: id, Status: *req.Status}, nil
		},
	}
	r := newLeaveRouter(svc)

	w := doJSON(r, http.MethodPatch, "/api/v1/leaves/1", `{"status":"approved"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	w = doJSON(r, http.MethodPatch, "/api/v1/leaves/9", `{"status":"approved"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/v1/leaves/1", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
