package leaveusage

import (
	"context"
	"errors"

	leaveusageerrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leaveusage_service.go -destination=mock/leaveusage_service_mock.go -package=mock
type Service interface {
	GetByTeacher(ctx context.Context, teacherID uint) (UsageResponse, error)
	GetBalance(ctx context.Context, teacherID uint) (BalanceResponse, error)
	Limits() LimitsResponse
}

type service struct {
	repo   Repository
	limits Limits
	logger *zap.Logger
}

func NewService(repo Repository, limits Limits, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaveusage.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveusage.service")
	}
	return &service{repo: repo, limits: limits, logger: l}
}

// GetByTeacher returns the stored usage row. A teacher who never submitted
// leave (and was never initialized) has none; callers decide whether to
// show zeros.
func (s *service) GetByTeacher(ctx context.Context, teacherID uint) (UsageResponse, error) {
	u, err := s.repo.FindByTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UsageResponse{}, leaveusageerrors.ErrUsageNotFound
		}
		s.logger.Error("get leave usage failed", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return UsageResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) GetBalance(ctx context.Context, teacherID uint) (BalanceResponse, error) {
	exists, err := s.repo.TeacherExists(ctx, teacherID)
	if err != nil {
		s.logger.Error("get leave balance teacher check failed", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return BalanceResponse{}, err
	}
	if !exists {
		return BalanceResponse{}, leaveusageerrors.ErrTeacherNotFound
	}

	usage := LeaveUsage{TeacherID: teacherID}
	u, err := s.repo.FindByTeacher(ctx, teacherID)
	switch {
	case err == nil:
		usage = *u
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		s.logger.Error("get leave balance usage failed", zap.Uint("teacher_id", teacherID), zap.Error(err))
		return BalanceResponse{}, err
	}

	return BuildBalance(usage, s.limits), nil
}

func (s *service) Limits() LimitsResponse {
	return LimitsResponse{
		Casual: s.limits.Casual,
		Sick:   s.limits.Sick,
		Duty:   s.limits.Duty,
		Other:  s.limits.Other,
	}
}

// BuildBalance sets usage against limits. Going over a limit is reported,
// never prevented.
func BuildBalance(u LeaveUsage, limits Limits) BalanceResponse {
	resp := BalanceResponse{
		TeacherID:  u.TeacherID,
		Categories: make([]CategoryBalance, 0, len(Types)),
	}
	for _, t := range Types {
		used := u.Used(t)
		limit := limits.For(t)
		remaining := limit - used
		if remaining < 0 {
			remaining = 0
		}
		resp.Categories = append(resp.Categories, CategoryBalance{
			LeaveType: t,
			Used:      used,
			Limit:     limit,
			Remaining: remaining,
			Exceeded:  used > limit,
		})
	}
	return resp
}

func mapToResponse(u LeaveUsage) UsageResponse {
	return UsageResponse{
		ID:         u.ID,
		TeacherID:  u.TeacherID,
		CasualUsed: u.CasualUsed,
		SickUsed:   u.SickUsed,
		DutyUsed:   u.DutyUsed,
		OtherUsed:  u.OtherUsed,
	}
}
