package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// DefaultMonthlyLimit is the number of campaigns an advertiser may create
// per calendar month.
const DefaultMonthlyLimit = 10

const (
	defaultPageLimit = 20
	maxPageLimit     = 50
)

// Options tunes the campaign usecase. Zero values fall back to defaults.
type Options struct {
	// MonthlyLimit caps campaign creation per advertiser per calendar
	// month.
	MonthlyLimit int
	// Location is the time zone in which "today" and calendar months are
	// evaluated. Defaults to UTC.
	Location *time.Location
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
	// Events receives committed changes. Nil drops them.
	Events port.EventPublisher
}

// CampaignUseCase implements port.CampaignUseCase. It orchestrates the
// campaign and application stores; every invariant that must survive
// concurrent callers is enforced by a conditional write in the store, and
// the checks made here only produce the precise failure code.
type CampaignUseCase struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	profiles     port.ProfileRepository
	cache        port.ApplicantCache
	events       port.EventPublisher
	log          *slog.Logger

	monthlyLimit int
	loc          *time.Location
	now          func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase wires the usecase to its stores. A nil cache disables
// applicant board caching.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	applications port.ApplicationRepository,
	profiles port.ProfileRepository,
	cache port.ApplicantCache,
	log *slog.Logger,
	opts Options,
) *CampaignUseCase {
	if cache == nil {
		cache = nopCache{}
	}
	if log == nil {
		log = slog.Default()
	}
	if opts.MonthlyLimit <= 0 {
		opts.MonthlyLimit = DefaultMonthlyLimit
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Events == nil {
		opts.Events = nopPublisher{}
	}
	return &CampaignUseCase{
		campaigns:    campaigns,
		applications: applications,
		profiles:     profiles,
		cache:        cache,
		events:       opts.Events,
		log:          log,
		monthlyLimit: opts.MonthlyLimit,
		loc:          opts.Location,
		now:          opts.Now,
	}
}

// today returns the current calendar date in the configured zone, held at
// UTC midnight like every stored date.
func (u *CampaignUseCase) today() time.Time {
	y, m, d := u.now().In(u.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// quota returns the creation window covering the current calendar month.
func (u *CampaignUseCase) quota() port.Quota {
	y, m, _ := u.now().In(u.loc).Date()
	from := time.Date(y, m, 1, 0, 0, 0, 0, u.loc)
	return port.Quota{Limit: u.monthlyLimit, From: from, To: from.AddDate(0, 1, 0)}
}

// fail passes domain errors through untouched. Anything else is a store
// failure: it is logged with the operation context and replaced by
// domain.ErrInternal so no storage detail reaches the caller.
func (u *CampaignUseCase) fail(ctx context.Context, op string, err error, attrs ...any) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	args := append([]any{slog.String("op", op), slog.Any("error", err)}, attrs...)
	u.log.ErrorContext(ctx, "campaign operation failed", args...)
	return domain.ErrInternal
}

// invalidate drops the cached applicant board. A cache failure only costs
// freshness until the entry expires, so it is logged and swallowed.
func (u *CampaignUseCase) invalidate(ctx context.Context, campaignID uuid.UUID) {
	if err := u.cache.Invalidate(ctx, campaignID); err != nil {
		u.log.WarnContext(ctx, "applicant cache invalidation failed",
			slog.String("campaign_id", campaignID.String()), slog.Any("error", err))
	}
}

// publish emits e stamped with the current time. The change it describes
// is already committed, so a publish failure is only logged.
func (u *CampaignUseCase) publish(ctx context.Context, e domain.Event) {
	e.OccurredAt = u.now().UTC()
	if err := u.events.Publish(ctx, e); err != nil {
		u.log.WarnContext(ctx, "event publish failed",
			slog.String("event", string(e.Type)), campaignAttr(e.CampaignID), slog.Any("error", err))
	}
}

func actor(id uuid.UUID) slog.Attr {
	return slog.String("actor_id", id.String())
}

func campaignAttr(id uuid.UUID) slog.Attr {
	return slog.String("campaign_id", id.String())
}

type nopCache struct{}

func (nopCache) Get(context.Context, uuid.UUID) (*domain.ApplicantBoard, error) { return nil, nil }
func (nopCache) Generation(context.Context, uuid.UUID) (int64, error)           { return 0, nil }
func (nopCache) Set(context.Context, *domain.ApplicantBoard, int64) error       { return nil }
func (nopCache) Invalidate(context.Context, uuid.UUID) error                    { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }
