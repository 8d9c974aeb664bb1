package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/config"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/middleware"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/connection"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/store/memory"
	pgstore "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/store/postgres"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const redisMaxRetries = 5

// BuildApp wires infrastructure, modules and ops endpoints onto router. The
// returned cleanup releases every connection that was opened.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn("close resource failed", zap.Error(err))
			}
		}
	}

	// 1. Setup Infrastructure
	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return cleanup, err
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis, redisMaxRetries, logger)
		if err != nil {
			return cleanup, err
		}
		closers = append(closers, rdb.Close)
	} else {
		log.Info("redis disabled; teacher cache and idempotency are off")
	}

	publisher := leave.NewNoopEventPublisher()
	if cfg.Kafka.Broker != "" {
		writer := connection.NewKafkaWriter(cfg.Kafka)
		closers = append(closers, writer.Close)
		publisher = leave.NewKafkaEventPublisher(writer)
		log.Info("leave events publishing to kafka", zap.String("broker", cfg.Kafka.Broker))
	}

	if cfg.Store.SeedSampleData {
		if err := store.Seed(context.Background()); err != nil {
			return cleanup, fmt.Errorf("seed sample data: %w", err)
		}
	}
	if err := teacher.InvalidateListCache(context.Background(), rdb); err != nil {
		log.Warn("clear teacher list cache failed", zap.Error(err))
	}

	// 2. Global middleware
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Metrics(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	)

	// 3. Register Modules & Routes
	if err := registerModules(router, moduleDeps{
		cfg:       cfg,
		store:     store,
		rdb:       rdb,
		publisher: publisher,
		logger:    logger,
	}); err != nil {
		return cleanup, err
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": cfg.Store.Driver})
	})

	return cleanup, nil
}

func openStore(cfg *config.Config, logger *zap.Logger) (Store, func() error, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, err
		}

		store := pgstore.New(gormDB, logger)
		if err := store.Migrate(); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return store, sqlDB.Close, nil
	default:
		return memory.New(memory.WithLogger(logger)), nil, nil
	}
}
