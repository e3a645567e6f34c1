package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/port"
)

// ProfileRepository answers profile existence checks against the profile
// tables maintained by the account service.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

var _ port.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) HasAdvertiserProfile(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM advertiser_profiles WHERE user_id = $1)`, userID)
}

func (r *ProfileRepository) HasInfluencerProfile(ctx context.Context, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM influencer_profiles WHERE user_id = $1)`, userID)
}

func (r *ProfileRepository) exists(ctx context.Context, query string, userID uuid.UUID) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("profile exists: %w", err)
	}
	return ok, nil
}
