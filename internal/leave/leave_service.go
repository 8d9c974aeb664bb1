package leave

import (
	"context"
	"errors"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/events"
	leaveerrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave/errors"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/metrics"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id uint) (LeaveResponse, error)
	GetByTeacher(ctx context.Context, teacherID uint, leaveType string) ([]LeaveResponse, error)
	Update(ctx context.Context, id uint, req UpdateLeaveRequest) (LeaveResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewService builds the leave service. A nil publisher disables events.
func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.Uint("teacher_id", req.TeacherID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("days", req.Days),
	)

	l, err := ValidateCreate(req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	exists, err := s.repo.TeacherExists(ctx, l.TeacherID)
	if err != nil {
		s.logger.Error("create leave teacher check failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrTeacherNotFound
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	metrics.RecordLeaveSubmitted(l.LeaveType, l.Days)
	s.publish(ctx, events.LeaveSubmittedEventType, *l)

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", l.ID),
		zap.Uint("teacher_id", l.TeacherID),
		zap.String("leave_type", l.LeaveType),
		zap.Int("days", l.Days),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("get leave by id failed", zap.Uint("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

// GetByTeacher lists a teacher's leaves. An empty, "all" or unrecognized
// leaveType means no category filter.
func (s *service) GetByTeacher(ctx context.Context, teacherID uint, leaveType string) ([]LeaveResponse, error) {
	var (
		leaves []Leave
		err    error
	)
	if leaveType != "" && leaveType != FilterAll && leaveusage.IsValidType(leaveType) {
		leaves, err = s.repo.FindByTeacherAndType(ctx, teacherID, leaveType)
	} else {
		leaves, err = s.repo.FindByTeacher(ctx, teacherID)
	}
	if err != nil {
		s.logger.Error("get teacher leaves failed",
			zap.Uint("teacher_id", teacherID),
			zap.String("leave_type", leaveType),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// Update merges the provided fields. Usage totals are left as they were at
// submission time.
func (s *service) Update(ctx context.Context, id uint, req UpdateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave requested", zap.String("request_id", rid), zap.Uint("leave_id", id))

	patch, err := ValidateUpdate(req)
	if err != nil {
		s.logger.Warn("update leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	l, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("update leave persist failed", zap.String("request_id", rid), zap.Uint("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	metrics.RecordLeaveUpdated(l.Status)
	s.publish(ctx, events.LeaveUpdatedEventType, *l)

	s.logger.Info("update leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", l.ID),
		zap.String("status", l.Status),
	)
	return mapToResponse(*l), nil
}

// publish is best effort: the request is already stored when it runs.
func (s *service) publish(ctx context.Context, eventType string, l Leave) {
	event := events.LeaveEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    l.ID,
		TeacherID:  l.TeacherID,
		LeaveType:  l.LeaveType,
		Days:       l.Days,
		Status:     l.Status,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishLeaveEvent(ctx, event); err != nil {
		s.logger.Error("publish leave event failed",
			zap.String("event_type", eventType),
			zap.Uint("leave_id", l.ID),
			zap.Error(err),
		)
	}
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID,
		TeacherID:   l.TeacherID,
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		Days:        l.Days,
		Reason:      l.Reason,
		Status:      l.Status,
		ApprovedBy:  l.ApprovedBy,
		Notes:       l.Notes,
		SubmittedAt: l.SubmittedAt,
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, mapToResponse(l))
	}
	return resp
}
