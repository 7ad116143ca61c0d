package events

import (
	"context"

	"group-decision/pkg/logger"

	"go.uber.org/zap"
)

// LogPublisher only records events in the application log.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (p *LogPublisher) PublishStatusChanged(_ context.Context, evt StatusChanged) error {
	logger.L.Info("Property status changed",
		zap.String("groupID", evt.GroupID),
		zap.String("propertyID", evt.PropertyID),
		zap.String("previous", string(evt.Previous)),
		zap.String("current", string(evt.Current)),
		zap.Int("yes", evt.Counts.Yes),
		zap.Int("no", evt.Counts.No),
		zap.Int("maybe", evt.Counts.Maybe))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
