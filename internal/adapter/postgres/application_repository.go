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

const applicationUniqueKey = "applications_campaign_influencer_key"

// sortColumns whitelists the ORDER BY targets of ListByInfluencer.
var sortColumns = map[string]string{
	"applied_at": "a.applied_at",
	"updated_at": "a.updated_at",
}

// ApplicationRepository implements port.ApplicationRepository using
// pgxpool.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

var _ port.ApplicationRepository = (*ApplicationRepository)(nil)

// NewApplicationRepository returns a new repository instance.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

// Create inserts the application only while its campaign is recruiting.
// The campaign row is share-locked so a concurrent close either waits for
// the insert or makes it match nothing.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications (id, campaign_id, influencer_id, motivation, visit_date, status)
		SELECT $1::uuid, c.id, $3::uuid, $4::text, $5::date, 'submitted'
		FROM campaigns c
		WHERE c.id = $2 AND c.status = 'recruiting'
		FOR SHARE
		RETURNING applied_at, updated_at`,
		a.ID, a.CampaignID, a.InfluencerID, a.Motivation, a.VisitDate,
	).Scan(&a.AppliedAt, &a.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotRecruiting
	case isUniqueViolation(err, applicationUniqueKey):
		return domain.ErrDuplicateApplication
	case err != nil:
		return fmt.Errorf("insert application: %w", err)
	}
	a.Status = domain.ApplicationSubmitted
	return nil
}

// Exists reports whether the pair already has an application.
func (r *ApplicationRepository) Exists(ctx context.Context, campaignID, influencerID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM applications WHERE campaign_id = $1 AND influencer_id = $2)`,
		campaignID, influencerID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("application exists: %w", err)
	}
	return ok, nil
}

// FindByInfluencers returns the campaign's applications of the given
// influencers.
func (r *ApplicationRepository) FindByInfluencers(ctx context.Context, campaignID uuid.UUID, influencerIDs []uuid.UUID) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		WHERE a.campaign_id = $1 AND a.influencer_id = ANY($2::uuid[])`,
		campaignID, uuidStrings(influencerIDs))
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[applicationRow])
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	apps := make([]domain.Application, 0, len(raw))
	for _, row := range raw {
		apps = append(apps, row.toDomain())
	}
	return apps, nil
}

// CountByStatus counts the campaign's applications in status.
func (r *ApplicationRepository) CountByStatus(ctx context.Context, campaignID uuid.UUID, status domain.ApplicationStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM applications WHERE campaign_id = $1 AND status = $2`,
		campaignID, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// MarkSelected holds the campaign row lock for the whole read-check-write
// sequence, so overlapping selections on one campaign run one after the
// other and the capacity check sees every committed selection.
func (r *ApplicationRepository) MarkSelected(ctx context.Context, campaignID uuid.UUID, influencerIDs []uuid.UUID) (port.SelectionOutcome, error) {
	var out port.SelectionOutcome
	ids := uuidStrings(influencerIDs)

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var (
			status   string
			capacity int
		)
		err := tx.QueryRow(ctx,
			`SELECT status, recruitment_count FROM campaigns WHERE id = $1 FOR UPDATE`,
			campaignID).Scan(&status, &capacity)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}

		var pending int
		err = tx.QueryRow(ctx, `
			SELECT count(*) FILTER (WHERE status = 'submitted' AND influencer_id = ANY($2::uuid[])),
			       count(*) FILTER (WHERE status = 'selected')
			FROM applications
			WHERE campaign_id = $1`,
			campaignID, ids).Scan(&pending, &out.AlreadySelected)
		if err != nil {
			return fmt.Errorf("count applications: %w", err)
		}
		if pending == 0 {
			return nil
		}
		if domain.CampaignStatus(status) != domain.CampaignClosed {
			return domain.ErrCampaignNotClosed
		}
		if out.AlreadySelected+pending > capacity {
			return domain.ErrCapacityExceeded
		}

		tag, err := tx.Exec(ctx, `
			UPDATE applications SET status = 'selected', updated_at = now()
			WHERE campaign_id = $1 AND influencer_id = ANY($2::uuid[]) AND status = 'submitted'`,
			campaignID, ids)
		if err != nil {
			return fmt.Errorf("select applications: %w", err)
		}
		out.Updated = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return port.SelectionOutcome{}, err
	}
	return out, nil
}

// MarkRejected is a single conditional write gated on both the
// application and the campaign state.
func (r *ApplicationRepository) MarkRejected(ctx context.Context, campaignID uuid.UUID, influencerIDs []uuid.UUID) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE applications a SET status = 'rejected', updated_at = now()
		FROM campaigns c
		WHERE a.campaign_id = $1
		  AND c.id = a.campaign_id
		  AND c.status = 'closed'
		  AND a.influencer_id = ANY($2::uuid[])
		  AND a.status = 'submitted'`,
		campaignID, uuidStrings(influencerIDs))
	if err != nil {
		return 0, fmt.Errorf("reject applications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListApplicants joins each application with the influencer profile,
// newest first.
func (r *ApplicationRepository) ListApplicants(ctx context.Context, campaignID uuid.UUID) ([]domain.Applicant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`,
		       p.name AS influencer_name, p.channel_name, p.follower_count
		FROM applications a
		JOIN influencer_profiles p ON p.user_id = a.influencer_id
		WHERE a.campaign_id = $1
		ORDER BY a.applied_at DESC, a.id`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[applicantRow])
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	out := make([]domain.Applicant, 0, len(raw))
	for _, row := range raw {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ListByInfluencer pages through an influencer's applications with the
// campaign title and advertiser company attached.
func (r *ApplicationRepository) ListByInfluencer(ctx context.Context, influencerID uuid.UUID, f port.ApplicationFilter) ([]domain.MyApplication, int, error) {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns["applied_at"]
	}
	direction := "DESC"
	if f.Ascending {
		direction = "ASC"
	}
	var status *string
	if f.Status != nil {
		s := string(*f.Status)
		status = &s
	}

	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM applications a
		WHERE a.influencer_id = $1 AND ($2::text IS NULL OR a.status = $2)`,
		influencerID, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count influencer applications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, c.title AS campaign_title, ap.company_name
		FROM applications a
		JOIN campaigns c ON c.id = a.campaign_id
		JOIN advertiser_profiles ap ON ap.user_id = c.advertiser_id
		WHERE a.influencer_id = $1 AND ($2::text IS NULL OR a.status = $2)
		ORDER BY %s %s, a.id
		LIMIT $3 OFFSET $4`, applicationColumns, column, direction)
	rows, err := r.pool.Query(ctx, query, influencerID, status, f.Page.Limit, f.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list influencer applications: %w", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[myApplicationRow])
	if err != nil {
		return nil, 0, fmt.Errorf("list influencer applications: %w", err)
	}
	out := make([]domain.MyApplication, 0, len(raw))
	for _, row := range raw {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}
