// Package events publishes nomination status changes to downstream consumers.
package events

import (
	"context"
	"time"

	"group-decision/internal/model"
	"group-decision/internal/tally"
)

type StatusChanged struct {
	GroupID    string               `json:"group_id"`
	PropertyID string               `json:"property_id"`
	Previous   model.PropertyStatus `json:"previous"`
	Current    model.PropertyStatus `json:"current"`
	Counts     tally.Counts         `json:"counts"`
	ChangedAt  time.Time            `json:"changed_at"`
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, evt StatusChanged) error
	Close() error
}
