package events

import "time"

const LeaveLifecycleTopic = "school.leave.lifecycle.v1"

const (
	LeaveSubmittedEventType = "leave_submitted"
	LeaveUpdatedEventType   = "leave_updated"
)

type LeaveEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    uint      `json:"leave_id"`
	TeacherID  uint      `json:"teacher_id"`
	LeaveType  string    `json:"leave_type"`
	Days       int       `json:"days"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
