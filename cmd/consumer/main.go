package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/app"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/config"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/logger"

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, log); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
