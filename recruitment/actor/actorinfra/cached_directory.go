package actorinfra

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/Abraxas-365/campus/recruitment/actor"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "campus:actor:"

// Cache is the subset of redis used by CachedDirectory.
// Get returns redis.Nil on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisCache adapts a go-redis client to Cache
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// CachedDirectory caches positive lookups of another directory.
// Profile ownership never changes once created, so misses are not cached
// and a new profile is visible on the next request.
type CachedDirectory struct {
	next  actor.Directory
	cache Cache
	ttl   time.Duration
}

func NewCachedDirectory(next actor.Directory, cache Cache, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (d *CachedDirectory) JobseekerIDByUser(ctx context.Context, userID kernel.UserID) (kernel.JobseekerID, bool, error) {
	key := keyPrefix + "jobseeker:" + userID.String()
	if id, ok := d.lookup(ctx, key); ok {
		return kernel.JobseekerID(id), true, nil
	}

	id, found, err := d.next.JobseekerIDByUser(ctx, userID)
	if err != nil || !found {
		return id, found, err
	}
	d.store(ctx, key, id.String())
	return id, true, nil
}

func (d *CachedDirectory) CompanyIDByUser(ctx context.Context, userID kernel.UserID) (kernel.CompanyID, bool, error) {
	key := keyPrefix + "company:" + userID.String()
	if id, ok := d.lookup(ctx, key); ok {
		return kernel.CompanyID(id), true, nil
	}

	id, found, err := d.next.CompanyIDByUser(ctx, userID)
	if err != nil || !found {
		return id, found, err
	}
	d.store(ctx, key, id.String())
	return id, true, nil
}

func (d *CachedDirectory) lookup(ctx context.Context, key string) (string, bool) {
	val, err := d.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logx.WithFields(logx.Fields{"key": key}).Warnf("actor cache read failed: %v", err)
		}
		return "", false
	}
	return val, val != ""
}

func (d *CachedDirectory) store(ctx context.Context, key, value string) {
	if err := d.cache.Set(ctx, key, value, d.ttl); err != nil {
		logx.WithFields(logx.Fields{"key": key}).Warnf("actor cache write failed: %v", err)
	}
}
