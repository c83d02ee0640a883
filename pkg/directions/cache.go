package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	gocachestore "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultLegCacheTTL is how long a fetched leg stays valid. Campus walking
// and driving legs between fixed points barely change, so a generous TTL
// saves a lot of upstream quota.
const DefaultLegCacheTTL = 90 * time.Minute

// CachedProvider memoises legs from an upstream Provider in an in-process
// cache keyed by mode and endpoints. Failures are never cached.
type CachedProvider struct {
	upstream Provider
	cache    *cache.Cache[string]
}

func NewCachedProvider(upstream Provider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultLegCacheTTL
	}

	goCacheStore := gocachestore.NewGoCache(
		gocache.New(ttl, 2*ttl),
		store.WithExpiration(ttl),
	)

	return &CachedProvider{
		upstream: upstream,
		cache:    cache.New[string](goCacheStore),
	}
}

func (c *CachedProvider) GetLeg(ctx context.Context, origin cdm.Coordinate, destination cdm.Coordinate, mode Mode) (*cdm.RouteLeg, error) {
	key := fmt.Sprintf("leg:%s:%s:%s", mode, origin, destination)

	cachedValue, err := c.cache.Get(ctx, key)
	if err == nil {
		var leg *cdm.RouteLeg
		if json.Unmarshal([]byte(cachedValue), &leg) == nil {
			return leg, nil
		}
	}

	leg, err := c.upstream.GetLeg(ctx, origin, destination, mode)
	if err != nil {
		return nil, err
	}

	legJSON, _ := json.Marshal(leg)
	c.cache.Set(ctx, key, string(legJSON))

	return leg, nil
}
