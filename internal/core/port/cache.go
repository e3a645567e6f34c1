package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// ApplicantCache caches applicant boards between mutations. A miss is
// reported as (nil, nil). Cache failures are never fatal to callers.
//
// Every Invalidate advances the campaign's generation. Set only stores a
// board while the generation it was read under is still current, so a
// board built from rows read before a mutation is dropped instead of
// outliving that mutation's invalidation.
type ApplicantCache interface {
	Get(ctx context.Context, campaignID uuid.UUID) (*domain.ApplicantBoard, error)
	// Generation returns the campaign's current generation, zero if it
	// was never invalidated.
	Generation(ctx context.Context, campaignID uuid.UUID) (int64, error)
	// Set stores board unless the campaign's generation moved past
	// generation.
	Set(ctx context.Context, board *domain.ApplicantBoard, generation int64) error
	Invalidate(ctx context.Context, campaignID uuid.UUID) error
}
