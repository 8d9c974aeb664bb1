package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/bootstrap"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/events"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveLifecycle turns every leave lifecycle event into an audit entry.
// Offsets are committed only after the entry is written; undecodable messages
// are committed and skipped. It returns when ctx is cancelled.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LeaveEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		entryCtx := ctx
		if event.RequestID != "" {
			entryCtx = contextutil.WithRequestID(ctx, event.RequestID)
		}
		audit.Log(entryCtx, AuditEntry(event))

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("leave event audited",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.Uint("leave_id", event.LeaveID),
		)
	}
}

// AuditEntry maps a leave event to its audit record.
func AuditEntry(event events.LeaveEvent) bootstrap.AuditLog {
	action := "LEAVE_EVENT"
	switch event.EventType {
	case events.LeaveSubmittedEventType:
		action = "LEAVE_SUBMITTED"
	case events.LeaveUpdatedEventType:
		action = "LEAVE_UPDATED"
	}

	return bootstrap.AuditLog{
		Action:  action,
		Message: fmt.Sprintf("leave %d for teacher %d is %s", event.LeaveID, event.TeacherID, event.Status),
		Meta: map[string]any{
			"event_id":    event.EventID,
			"leave_id":    event.LeaveID,
			"teacher_id":  event.TeacherID,
			"leave_type":  event.LeaveType,
			"days":        event.Days,
			"status":      event.Status,
			"occurred_at": event.OccurredAt,
		},
	}
}
