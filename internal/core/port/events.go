package port

import (
	"context"

	"campaign-hub/internal/core/domain"
)

// EventPublisher hands committed domain events to downstream consumers.
// Publishing is best effort: the state change has already committed.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}
