package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

const (
	keyPrefix = "campaign:applicants:"
	// genTTL keeps a generation alive far longer than any board read.
	genTTL = 24 * time.Hour
)

// setIfCurrent writes the board only while the generation key still holds
// the generation the board was built under.
var setIfCurrent = goredis.NewScript(`
local gen = redis.call('GET', KEYS[2])
if (gen or '0') ~= ARGV[2] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// ApplicantCache stores applicant boards as JSON with a TTL. Each campaign
// also has a generation counter that Invalidate advances.
type ApplicantCache struct {
	client *goredis.Client
	ttl    time.Duration
}

var _ port.ApplicantCache = (*ApplicantCache)(nil)

// NewApplicantCache creates the cache adapter. A non-positive ttl falls
// back to one minute.
func NewApplicantCache(client *goredis.Client, ttl time.Duration) *ApplicantCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ApplicantCache{client: client, ttl: ttl}
}

// Board and generation keys share a hash tag so the script touches a single
// cluster slot.
func key(campaignID uuid.UUID) string {
	return keyPrefix + "{" + campaignID.String() + "}"
}

func genKey(campaignID uuid.UUID) string {
	return key(campaignID) + ":gen"
}

// Get returns the cached board or nil on a miss.
func (c *ApplicantCache) Get(ctx context.Context, campaignID uuid.UUID) (*domain.ApplicantBoard, error) {
	raw, err := c.client.Get(ctx, key(campaignID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get applicant board: %w", err)
	}
	var board domain.ApplicantBoard
	if err = json.Unmarshal(raw, &board); err != nil {
		// unreadable entries are treated as misses and overwritten
		return nil, nil
	}
	return &board, nil
}

// Generation returns the campaign's invalidation counter, zero when unset.
func (c *ApplicantCache) Generation(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(campaignID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get applicant board generation: %w", err)
	}
	return gen, nil
}

// Set stores board unless the campaign was invalidated after gen was read.
func (c *ApplicantCache) Set(ctx context.Context, board *domain.ApplicantBoard, gen int64) error {
	raw, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("encode applicant board: %w", err)
	}
	keys := []string{key(board.CampaignID), genKey(board.CampaignID)}
	err = setIfCurrent.Run(ctx, c.client, keys, raw, strconv.FormatInt(gen, 10), c.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("set applicant board: %w", err)
	}
	return nil
}

// Invalidate advances the generation and drops the cached board.
func (c *ApplicantCache) Invalidate(ctx context.Context, campaignID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, genKey(campaignID))
		pipe.Expire(ctx, genKey(campaignID), genTTL)
		pipe.Del(ctx, key(campaignID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate applicant board: %w", err)
	}
	return nil
}
