package app

import (
	"context"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/auth"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/config"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/middleware"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/rbac"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/report"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const idempotencyTTL = 24 * time.Hour

// Login attempts per client IP, on top of the global limit.
var (
	loginRate  = rate.Every(time.Second)
	loginBurst = 5
)

// Store is the backing store every module reads and writes through.
type Store interface {
	Teachers() teacher.Repository
	Leaves() leave.Repository
	Usage() leaveusage.Repository
	Seed(ctx context.Context) error
}

type moduleDeps struct {
	cfg       *config.Config
	store     Store
	rdb       *redis.Client
	publisher leave.EventPublisher
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, deps moduleDeps) error {
	cfg := deps.cfg
	logger := deps.logger

	// --- Services ---
	teacherService := teacher.NewService(deps.store.Teachers(), teacherCache(cfg, deps.rdb), cfg.Redis.CacheTTL, logger)
	leaveService := leave.NewService(deps.store.Leaves(), deps.publisher, logger)
	usageService := leaveusage.NewService(deps.store.Usage(), limitsFromConfig(cfg.Leave.Limits), logger)
	reportService := report.NewService(deps.store.Leaves(), deps.store.Teachers(), report.WithLogger(logger))

	// --- Handlers ---
	teacherHandler := teacher.NewHandler(teacherService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	usageHandler := leaveusage.NewHandler(usageService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Write guards: auth, then rbac, then idempotency ---
	var authz rbac.Service
	var authGuards, idempGuards []gin.HandlerFunc
	if cfg.Auth.Enabled {
		var err error
		if authz, err = rbac.NewService(cfg.Auth.DemoUsername); err != nil {
			return err
		}
		authGuards = []gin.HandlerFunc{
			middleware.AuthMiddleware(cfg.Auth.JWTSecret),
			middleware.RateLimitByActor(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
		}
	}
	if deps.rdb != nil {
		idempGuards = []gin.HandlerFunc{middleware.Idempotency(deps.rdb, idempotencyTTL, logger)}
	}
	writeFor := func(resource string) []gin.HandlerFunc {
		guards := append([]gin.HandlerFunc{}, authGuards...)
		if authz != nil {
			guards = append(guards, rbac.Authorize(authz, resource, rbac.ActionWrite))
		}
		return append(guards, idempGuards...)
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		teacher.RegisterRoutes(api, teacherHandler, writeFor(rbac.ResourceTeachers)...)
		leave.RegisterRoutes(api, leaveHandler, writeFor(rbac.ResourceLeaves)...)
		leaveusage.RegisterRoutes(api, usageHandler)
		report.RegisterRoutes(api, reportHandler)
	}

	if cfg.Auth.Enabled {
		authRepo, err := auth.NewStaticRepository(cfg.Auth.DemoUsername, cfg.Auth.DemoPassword, cfg.Auth.DemoPasswordHash)
		if err != nil {
			return err
		}
		authService := auth.NewService(authRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
		auth.RegisterRoutes(api, auth.NewHandler(authService, logger),
			middleware.RateLimitByIP(loginRate, loginBurst))
	}

	return nil
}

// teacherCache returns the client the teacher list cache may use. The memory
// store starts empty on every boot, so a shared cache would outlive it.
func teacherCache(cfg *config.Config, rdb *redis.Client) *redis.Client {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return nil
	}
	return rdb
}

func limitsFromConfig(c config.LimitsConfig) leaveusage.Limits {
	return leaveusage.Limits{
		Casual: c.Casual,
		Sick:   c.Sick,
		Duty:   c.Duty,
		Other:  c.Other,
	}
}
