package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create locks the advertiser profile row, counts the campaigns created in
// the quota window and inserts c. The lock serializes concurrent creates
// of one advertiser so the count cannot go stale before the insert.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign, quota port.Quota) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var owner uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT user_id FROM advertiser_profiles WHERE user_id = $1 FOR UPDATE`,
			c.AdvertiserID).Scan(&owner)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrOwnerProfileRequired
		}
		if err != nil {
			return fmt.Errorf("lock advertiser: %w", err)
		}

		var created int
		err = tx.QueryRow(ctx, `
			SELECT count(*) FROM campaigns
			WHERE advertiser_id = $1 AND created_at >= $2 AND created_at < $3`,
			c.AdvertiserID, quota.From, quota.To).Scan(&created)
		if err != nil {
			return fmt.Errorf("count campaigns: %w", err)
		}
		if created >= quota.Limit {
			return domain.ErrCreationLimitExceeded
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO campaigns (id, advertiser_id, title, description, mission, benefits,
			                       location, recruitment_count, start_date, end_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING `+campaignColumns,
			c.ID, c.AdvertiserID, c.Title, c.Description, c.Mission, c.Benefits,
			c.Location, c.RecruitmentCount, c.StartDate, c.EndDate, string(domain.CampaignRecruiting))
		if err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}
		row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[campaignRow])
		if err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}
		*c = *row.toDomain()
		return nil
	})
}

// Get returns the campaign or nil when it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return collectCampaign(rows)
}

// UpdateFields overwrites the editable columns while the campaign is
// recruiting.
func (r *CampaignRepository) UpdateFields(ctx context.Context, id uuid.UUID, f domain.CampaignFields) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE campaigns
		SET title = $2, description = $3, mission = $4, benefits = $5, location = $6,
		    recruitment_count = $7, start_date = $8, end_date = $9, updated_at = now()
		WHERE id = $1 AND status = 'recruiting'
		RETURNING `+campaignColumns,
		id, f.Title, f.Description, f.Mission, f.Benefits, f.Location,
		f.RecruitmentCount, f.StartDate, f.EndDate)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return collectCampaign(rows)
}

// Delete removes the campaign; applications go with it by cascade.
func (r *CampaignRepository) Delete(ctx context.Context, id, advertiserID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaigns WHERE id = $1 AND advertiser_id = $2`, id, advertiserID)
	if err != nil {
		return false, fmt.Errorf("delete campaign: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Transition is a conditional status write. Termination fields are
// cleared whenever termination is nil.
func (r *CampaignRepository) Transition(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus, term *port.Termination) (*domain.Campaign, error) {
	var (
		date   any
		reason *string
	)
	if term != nil {
		date = term.Date
		reason = term.Reason
	}
	rows, err := r.pool.Query(ctx, `
		UPDATE campaigns
		SET status = $3, early_termination_date = $4, early_termination_reason = $5, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+campaignColumns,
		id, string(from), string(to), date, reason)
	if err != nil {
		return nil, fmt.Errorf("transition campaign: %w", err)
	}
	return collectCampaign(rows)
}

// PromoteSelectionComplete moves a closed campaign to selection_complete.
func (r *CampaignRepository) PromoteSelectionComplete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = 'selection_complete', updated_at = now()
		WHERE id = $1 AND status = 'closed'`, id)
	if err != nil {
		return false, fmt.Errorf("promote campaign: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByAdvertiser pages through one advertiser's campaigns.
func (r *CampaignRepository) ListByAdvertiser(ctx context.Context, advertiserID uuid.UUID, page domain.PageRequest) ([]domain.CampaignSummary, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM campaigns WHERE advertiser_id = $1`, advertiserID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count advertiser campaigns: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+summaryColumns+`
		FROM campaigns c
		WHERE c.advertiser_id = $1
		ORDER BY c.created_at DESC, c.id
		LIMIT $2 OFFSET $3`,
		advertiserID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list advertiser campaigns: %w", err)
	}
	items, err := collectSummaries(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list advertiser campaigns: %w", err)
	}
	return items, total, nil
}

// List pages through all campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context, status *domain.CampaignStatus, page domain.PageRequest) ([]domain.CampaignSummary, int, error) {
	var filter *string
	if status != nil {
		s := string(*status)
		filter = &s
	}

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM campaigns WHERE ($1::text IS NULL OR status = $1)`, filter).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count campaigns: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+summaryColumns+`
		FROM campaigns c
		WHERE ($1::text IS NULL OR c.status = $1)
		ORDER BY c.created_at DESC, c.id
		LIMIT $2 OFFSET $3`,
		filter, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list campaigns: %w", err)
	}
	items, err := collectSummaries(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list campaigns: %w", err)
	}
	return items, total, nil
}

func collectCampaign(rows pgx.Rows) (*domain.Campaign, error) {
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[campaignRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func collectSummaries(rows pgx.Rows) ([]domain.CampaignSummary, error) {
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[summaryRow])
	if err != nil {
		return nil, err
	}
	items := make([]domain.CampaignSummary, 0, len(raw))
	for _, r := range raw {
		items = append(items, r.toDomain())
	}
	return items, nil
}
