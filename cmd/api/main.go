package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/app"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/bootstrap"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/config"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg, log)
	defer cleanup()
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.StartHTTPServer(ctx, r, cfg.Server, bootstrap.NewStdoutAuditLogger(log), log); err != nil {
		log.Error("http server stopped with error", zap.Error(err))
	}
}
