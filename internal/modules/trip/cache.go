// README: Optional Redis-backed plan cache keyed by the canonical request.
package trip

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	logx "github.com/sankalp69/AI-travel-planner/pkg/logger"
)

const cacheKeyPrefix = "trip:plan:"

// Cache stores fully successful plan responses for identical requests.
// It is best-effort: Redis errors are logged and treated as misses.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache returns a Cache over the given client with the given TTL.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get looks up a cached plan for req. The second return reports a hit.
func (c *Cache) Get(ctx context.Context, req Request) (PlanResponse, bool) {
	val, err := c.rdb.Get(ctx, CacheKey(req)).Result()
	if err == redis.Nil {
		return PlanResponse{}, false
	}
	if err != nil {
		logx.Warn().Err(err).Msg("plan cache get failed")
		return PlanResponse{}, false
	}
	var resp PlanResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		logx.Warn().Err(err).Msg("plan cache entry corrupt")
		return PlanResponse{}, false
	}
	return resp, true
}

// Set stores resp for req with the configured TTL.
func (c *Cache) Set(ctx context.Context, req Request, resp PlanResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		logx.Warn().Err(err).Msg("plan cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, CacheKey(req), payload, c.ttl).Err(); err != nil {
		logx.Warn().Err(err).Msg("plan cache set failed")
	}
}

// CacheKey derives a deterministic key from the canonical request fields.
func CacheKey(req Request) string {
	canonical, _ := json.Marshal(struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		BudgetLevel int    `json:"budget_level"`
	}{
		Source:      req.Source,
		Destination: req.Destination,
		StartDate:   req.StartDate.Format(dateLayout),
		EndDate:     req.EndDate.Format(dateLayout),
		BudgetLevel: req.BudgetLevel,
	})
	sum := sha256.Sum256(canonical)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
