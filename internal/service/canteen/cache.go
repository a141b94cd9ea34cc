package canteen

import (
	"time"

	"github.com/maypok86/otter/v2"
)

const defaultCacheSize = 500

// ProfileCache holds assembled profiles by canteen id with a write TTL.
type ProfileCache struct {
	cache *otter.Cache[int64, *Profile]
}

func NewProfileCache(size int, ttl time.Duration) *ProfileCache {
	if size <= 0 {
		size = defaultCacheSize
	}

	return &ProfileCache{
		cache: otter.Must(&otter.Options[int64, *Profile]{
			MaximumSize:      size,
			ExpiryCalculator: otter.ExpiryWriting[int64, *Profile](ttl),
		}),
	}
}

func (c *ProfileCache) Get(id int64) (*Profile, bool) {
	return c.cache.GetIfPresent(id)
}

func (c *ProfileCache) Set(id int64, p *Profile) {
	c.cache.Set(id, p)
}

func (c *ProfileCache) Invalidate(id int64) {
	c.cache.Invalidate(id)
}
