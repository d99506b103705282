// Package cache provides the bounded, ordered list caches used by the skill
// feed and per-connection chat history. The relational store is always the
// source of truth; everything here is best-effort. Reads report an explicit
// miss and writes may silently do nothing, so every caller must have a
// store fallback that does not depend on cache contents.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache key shapes. A single bounded list for the global recent-skill feed
// and one bounded, time-limited list per connection for recent messages.
const (
	FeedRecentKey = "feed:recent"

	// FeedMax caps the feed list; entries beyond it drop off the cached view.
	FeedMax = 200

	// ChatMax caps each per-connection list.
	ChatMax = 50

	// ChatTTL expires idle chat lists.
	ChatTTL = 24 * time.Hour
)

// ChatKey returns the list key for one connection's recent messages.
func ChatKey(connectionID uint64) string {
	return fmt.Sprintf("chat:%d", connectionID)
}

// ListCache is the ordered bounded container behind the feed and chat
// caches. Lists are newest-first: PushFront prepends, Range reads
// [start, stop] inclusive from the head, Replace swaps the whole list for
// vals in the given order, Trim keeps the first n entries and Expire sets a
// TTL on the key. Implementations must be safe for concurrent use.
type ListCache interface {
	PushFront(ctx context.Context, key, val string) error
	Range(ctx context.Context, key string, start, stop int64) ([]string, error)
	Replace(ctx context.Context, key string, vals []string) error
	Trim(ctx context.Context, key string, n int64) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Noop is a ListCache that stores nothing and always misses. It is used
// when Redis is unavailable so the rest of the app degrades to store-only
// reads without nil checks.
type Noop struct{}

func (Noop) PushFront(context.Context, string, string) error { return nil }
func (Noop) Range(context.Context, string, int64, int64) ([]string, error) {
	return nil, nil
}
func (Noop) Replace(context.Context, string, []string) error       { return nil }
func (Noop) Trim(context.Context, string, int64) error             { return nil }
func (Noop) Expire(context.Context, string, time.Duration) error   { return nil }
