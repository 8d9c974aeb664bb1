package consumer_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/bootstrap"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/events"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/messaging/kafka/consumer"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type queueReader struct {
	msgs      []kafkago.Message
	fetchErrs []error
	cancel    context.CancelFunc
	committed []int64
}

func (r *queueReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		return kafkago.Message{}, err
	}
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *queueReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingAudit struct {
	entries    []bootstrap.AuditLog
	requestIDs []string
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
	a.requestIDs = append(a.requestIDs, contextutil.GetRequestID(ctx))
}

func message(t *testing.T, offset int64, event events.LeaveEvent) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkago.Message{Topic: events.LeaveLifecycleTopic, Offset: offset, Value: payload}
}

func TestConsumeLeaveLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	occurred := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	reader := &queueReader{
		cancel:    cancel,
		fetchErrs: []error{assert.AnError},
		msgs: []kafkago.Message{
			message(t, 1, events.LeaveEvent{
				EventID: "e-1", EventType: events.LeaveSubmittedEventType, RequestID: "req-9",
				LeaveID: 1, TeacherID: 2, LeaveType: "sick", Days: 3, Status: "pending", OccurredAt: occurred,
			}),
			{Topic: events.LeaveLifecycleTopic, Offset: 2, Value: []byte("{not json")},
			message(t, 3, events.LeaveEvent{
				EventID: "e-2", EventType: events.LeaveUpdatedEventType,
				LeaveID: 1, TeacherID: 2, LeaveType: "sick", Days: 3, Status: "approved", OccurredAt: occurred,
			}),
		},
	}
	audit := &recordingAudit{}

	consumer.ConsumeLeaveLifecycle(ctx, reader, audit, zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	if assert.Len(t, audit.entries, 2) {
		assert.Equal(t, "LEAVE_SUBMITTED", audit.entries[0].Action)
		assert.Equal(t, "leave 1 for teacher 2 is pending", audit.entries[0].Message)
		assert.Equal(t, 3, audit.entries[0].Meta["days"])
		assert.Equal(t, "LEAVE_UPDATED", audit.entries[1].Action)
	}
	assert.Equal(t, []string{"req-9", ""}, audit.requestIDs)
}

func TestAuditEntry_UnknownType(t *testing.T) {
	entry := consumer.AuditEntry(events.LeaveEvent{EventType: "something_else", LeaveID: 4, TeacherID: 1, Status: "pending"})
	assert.Equal(t, "LEAVE_EVENT", entry.Action)
}
