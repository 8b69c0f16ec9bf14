// Package ratelimit provides a redis-backed fixed-window request limiter.
//
// Counters live in redis so limits hold across replicas. A window starts on
// the first hit for a key and ends when the counter key expires. Caller keys
// are HMAC-derived before use, so raw client identities (IPs, emails) never
// appear as redis keys.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danishfaisall/gokart/internal/pkg/hash"
)

// Limiter reports whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Policy describes one fixed-window limit.
type Policy struct {
	// Name namespaces the redis keys, e.g. "login" or "otp".
	Name string
	// Limit is the maximum number of requests per window.
	Limit int64
	// Window is the window duration.
	Window time.Duration
}

// FixedWindow is the redis-backed Limiter implementation.
type FixedWindow struct {
	client *redis.Client
	mac    hash.Hasher
	policy Policy
}

// NewFixedWindow creates a limiter for the given policy. The hasher derives
// the redis key from the caller key.
func NewFixedWindow(client *redis.Client, mac hash.Hasher, policy Policy) *FixedWindow {
	return &FixedWindow{client: client, mac: mac, policy: policy}
}

// Allow increments the counter for key and reports whether it is within the
// limit. The window TTL is set only when the counter is created, so the
// window is anchored to the first hit.
func (f *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	digest, err := f.mac.Hash(key)
	if err != nil {
		return false, err
	}

	rk := fmt.Sprintf("ratelimit:%s:%s", f.policy.Name, digest)

	pipe := f.client.TxPipeline()
	incr := pipe.Incr(ctx, rk)
	pipe.ExpireNX(ctx, rk, f.policy.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return incr.Val() <= f.policy.Limit, nil
}
