package leave

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishLeaveEvent(ctx context.Context, event events.LeaveEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishLeaveEvent(context.Context, events.LeaveEvent) error {
	return nil
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer MessageWriter
}

func NewKafkaEventPublisher(writer MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

// PublishLeaveEvent keys messages by teacher so one teacher's events stay
// ordered within a partition.
func (p *kafkaEventPublisher) PublishLeaveEvent(ctx context.Context, event events.LeaveEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.LeaveLifecycleTopic,
		Key:   []byte(strconv.FormatUint(uint64(event.TeacherID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
