package events

import (
	"fmt"

	"group-decision/pkg/config"
	"group-decision/pkg/logger"

	"go.uber.org/zap"
)

// CreatePublisher picks the implementation named by messaging.provider.
func CreatePublisher(cfg config.MessagingConfig) (Publisher, error) {
	logger.L.Info("Creating event publisher", zap.String("provider", cfg.Provider))

	switch cfg.Provider {
	case "", "none":
		return NewLogPublisher(), nil
	case "kafka":
		return NewKafkaPublisher(cfg.Kafka)
	default:
		return nil, fmt.Errorf("unsupported messaging provider %q", cfg.Provider)
	}
}
