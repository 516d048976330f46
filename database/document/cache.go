package document

import (
	"context"
	"sync"
	"time"

	"thanawyia/utils"

	"go.uber.org/zap"
)

// DefaultFreshness is how long a loaded fixture is served without refetching.
const DefaultFreshness = 5 * time.Second

// Cache is a read-through cache over the fixture source.
type Cache struct {
	source    FixtureSource
	freshness time.Duration
	timeout   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	doc      *Document
	loadedAt time.Time
}

type CacheOption func(*Cache)

// WithFreshness sets the freshness window.
func WithFreshness(d time.Duration) CacheOption {
	return func(c *Cache) { c.freshness = d }
}

// WithFetchTimeout bounds each fixture fetch.
func WithFetchTimeout(d time.Duration) CacheOption {
	return func(c *Cache) { c.timeout = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

func NewCache(source FixtureSource, opts ...CacheOption) *Cache {
	c := &Cache{
		source:    source,
		freshness: DefaultFreshness,
		timeout:   5 * time.Second,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached document while it is fresh, unless forceRefresh is set.
// Otherwise it refetches; on failure it falls back to the last good copy, if any.
func (c *Cache) Load(ctx context.Context, forceRefresh bool) (*Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !forceRefresh && c.doc != nil && now.Sub(c.loadedAt) < c.freshness {
		utils.DocumentCacheLoads.WithLabelValues("hit").Inc()
		return c.doc.Clone(), nil
	}

	doc, err := c.fetch(ctx)
	if err != nil {
		utils.FixtureFetches.WithLabelValues("error").Inc()
		if c.doc != nil {
			utils.DocumentCacheLoads.WithLabelValues("stale_fallback").Inc()
			utils.GetLogger().Warn("Fixture fetch failed, serving cached document", zap.Error(err))
			return c.doc.Clone(), nil
		}
		return nil, utils.Unavailable(err, "fixture document is unavailable")
	}

	utils.FixtureFetches.WithLabelValues("ok").Inc()
	utils.DocumentCacheLoads.WithLabelValues("miss").Inc()
	c.doc = doc
	c.loadedAt = now
	return doc.Clone(), nil
}

// Store replaces the cached copy and restarts its freshness window.
func (c *Cache) Store(doc *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc.Clone()
	c.loadedAt = c.now()
}

func (c *Cache) fetch(ctx context.Context) (*Document, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	data, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
