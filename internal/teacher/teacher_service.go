package teacher

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"
	teachererrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher/errors"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const TeacherListCacheKey = "teachers:all"

const defaultCacheTTL = time.Hour

//go:generate mockgen -source=teacher_service.go -destination=mock/teacher_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTeacherRequest) (TeacherResponse, error)
	GetAll(ctx context.Context) ([]TeacherResponse, error)
	GetByID(ctx context.Context, id uint) (TeacherResponse, error)
	GetByCode(ctx context.Context, code string) (TeacherResponse, error)
	Search(ctx context.Context, query string) ([]TeacherResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService builds the teacher service. rdb may be nil, in which case the
// list is always read from the repository.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("teacher.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("teacher.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		sf:       &singleflight.Group{},
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTeacherRequest) (TeacherResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create teacher requested",
		zap.String("request_id", rid),
		zap.String("teacher_code", req.TeacherID),
	)

	if err := s.validate.Struct(req); err != nil {
		return TeacherResponse{}, apperror.MapValidationError(err)
	}

	_, err := s.repo.FindByCode(ctx, req.TeacherID)
	switch {
	case err == nil:
		s.logger.Warn("create teacher duplicate code", zap.String("teacher_code", req.TeacherID))
		return TeacherResponse{}, teachererrors.ErrTeacherCodeExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("create teacher lookup failed", zap.String("request_id", rid), zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	t := &Teacher{
		TeacherCode: req.TeacherID,
		Name:        req.Name,
		Department:  req.Department,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create teacher persist failed", zap.String("request_id", rid), zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	if err := InvalidateListCache(ctx, s.rdb); err != nil {
		s.logger.Error("failed to invalidate teacher list cache",
			zap.Error(err),
			zap.String("key", TeacherListCacheKey),
		)
	}

	s.logger.Info("create teacher success",
		zap.String("request_id", rid),
		zap.Uint("teacher_id", t.ID),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TeacherResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, TeacherListCacheKey).Result(); err == nil {
			var resp []TeacherResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(TeacherListCacheKey, func() (interface{}, error) {
		teachers, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(teachers)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TeacherListCacheKey, jsonData, s.cacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all teachers failed", zap.Error(err))
		return nil, err
	}

	return v.([]TeacherResponse), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (TeacherResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get teacher by id failed", zap.Uint("teacher_id", id), zap.Error(err))
		}
		return TeacherResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (TeacherResponse, error) {
	t, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get teacher by code failed", zap.String("teacher_code", code), zap.Error(err))
		}
		return TeacherResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Search(ctx context.Context, query string) ([]TeacherResponse, error) {
	if query == "" {
		return nil, teachererrors.ErrSearchQueryRequired
	}

	teachers, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("search teachers failed", zap.String("query", query), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(teachers), nil
}

// InvalidateListCache drops the cached teacher list. A nil client is a no-op.
func InvalidateListCache(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, TeacherListCacheKey).Err()
}

func mapToResponse(t Teacher) TeacherResponse {
	return TeacherResponse{
		ID:         t.ID,
		TeacherID:  t.TeacherCode,
		Name:       t.Name,
		Department: t.Department,
	}
}

func mapToListResponse(teachers []Teacher) []TeacherResponse {
	resp := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		resp = append(resp, mapToResponse(t))
	}
	return resp
}
