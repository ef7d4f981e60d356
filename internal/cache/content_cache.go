package cache

import (
	"context"
	"sync"
	"time"

	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Keys of the cached public listings
const (
	SkillsKey            = "skills:all"
	PublishedProjectsKey = "projects:published"
	PublishedBlogsKey    = "blogs:published"
)

const contentCleanupPeriod = time.Minute

// ContentCache holds public listings in memory for a fixed TTL.
// Writers invalidate the affected key; readers reload on miss.
type ContentCache struct {
	cache    *gocache.Cache
	ttl      time.Duration
	disabled bool

	// loads serializes concurrent reloads of the same key.
	// generations changes on every invalidation so a load that raced a
	// write does not store what it read before the write.
	mu          sync.Mutex
	loads       map[string]*sync.Mutex
	generations map[string]uint64
	epoch       uint64
}

// NewContentCache creates a listing cache. A disabled cache always calls the loader.
func NewContentCache(ttlSeconds int, disabled bool) *ContentCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		disabled = true
	}

	if disabled {
		logger.Info("Content cache disabled, listings are read from the database on every request")
	}

	return &ContentCache{
		cache:       gocache.New(ttl, contentCleanupPeriod),
		ttl:         ttl,
		disabled:    disabled,
		loads:       make(map[string]*sync.Mutex),
		generations: make(map[string]uint64),
	}
}

func (cc *ContentCache) keyLock(key string) *sync.Mutex {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	l, ok := cc.loads[key]
	if !ok {
		l = &sync.Mutex{}
		cc.loads[key] = l
	}
	return l
}

type generation struct {
	epoch uint64
	key   uint64
}

func (cc *ContentCache) generation(key string) generation {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return generation{epoch: cc.epoch, key: cc.generations[key]}
}

// Invalidate drops the given keys
func (cc *ContentCache) Invalidate(keys ...string) {
	for _, key := range keys {
		cc.mu.Lock()
		cc.generations[key]++
		cc.mu.Unlock()

		cc.cache.Delete(key)
		logger.Debug("Content cache invalidated", zap.String("key", key))
	}
	metrics.CacheSize.WithLabelValues("content").Set(float64(cc.cache.ItemCount()))
}

// Flush drops every cached listing
func (cc *ContentCache) Flush() {
	cc.mu.Lock()
	cc.epoch++
	cc.mu.Unlock()

	cc.cache.Flush()
	metrics.CacheSize.WithLabelValues("content").Set(0)
}

// GetOrLoad returns the listing stored under key, calling load on a miss.
// Loader errors are returned as-is and nothing is cached.
func GetOrLoad[T any](ctx context.Context, cc *ContentCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if cc == nil || cc.disabled {
		return load(ctx)
	}

	if items, ok := lookup[T](cc, key); ok {
		return items, nil
	}

	l := cc.keyLock(key)
	l.Lock()
	defer l.Unlock()

	// Another request may have filled the key while we waited
	if items, ok := lookup[T](cc, key); ok {
		return items, nil
	}

	metrics.CacheMisses.WithLabelValues(key).Inc()

	before := cc.generation(key)
	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if cc.generation(key) != before {
		logger.Debug("Content cache invalidated during load, result not stored", zap.String("key", key))
		return items, nil
	}

	cc.cache.Set(key, items, cc.ttl)
	metrics.CacheSize.WithLabelValues("content").Set(float64(cc.cache.ItemCount()))

	return items, nil
}

func lookup[T any](cc *ContentCache, key string) ([]T, bool) {
	data, found := cc.cache.Get(key)
	if !found {
		return nil, false
	}

	items, ok := data.([]T)
	if !ok {
		logger.Error("Invalid content cache data type", zap.String("key", key))
		cc.cache.Delete(key)
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(key).Inc()
	return items, true
}
