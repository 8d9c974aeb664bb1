package app

import (
	"context"
	"fmt"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/bootstrap"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/config"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/events"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/messaging/kafka/consumer"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer audits leave lifecycle events until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("kafka.broker is required to run the consumer")
	}

	reader := connection.NewKafkaReader(cfg.Kafka, events.LeaveLifecycleTopic)
	defer reader.Close()

	log.Info("consuming leave lifecycle events",
		zap.String("topic", events.LeaveLifecycleTopic),
		zap.String("group_id", cfg.Kafka.GroupID),
	)
	consumer.ConsumeLeaveLifecycle(ctx, reader, bootstrap.NewStdoutAuditLogger(logger), logger)

	log.Info("consumer shutting down")
	return nil
}
