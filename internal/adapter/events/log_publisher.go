package events

import (
	"context"
	"log/slog"

	"campaign-hub/internal/core/domain"
)

// LogPublisher records events in the log. It stands in for Kafka when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, e domain.Event) error {
	p.logger.DebugContext(ctx, "event published",
		slog.String("event", string(e.Type)),
		slog.String("campaign_id", e.CampaignID.String()),
		slog.String("actor_id", e.ActorID.String()),
		slog.String("status", e.Status),
		slog.Int("count", e.Count),
	)
	return nil
}
