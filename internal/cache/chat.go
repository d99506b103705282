package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/iliyamo/skill-swap/internal/model"
)

// ChatCache holds one newest-first list of recent messages per connection,
// capped at ChatMax entries and expired after ChatTTL of inactivity. Like
// FeedCache, every failure is logged and swallowed.
type ChatCache struct {
	List ListCache
}

func NewChatCache(list ListCache) *ChatCache {
	return &ChatCache{List: list}
}

// Push prepends a message to the connection's list, trims it to ChatMax and
// refreshes the TTL.
func (c *ChatCache) Push(ctx context.Context, connectionID uint64, msg model.Chat) {
	b, err := json.Marshal(msg)
	if err != nil {
		log.Printf("chat cache marshal failed: %v", err)
		return
	}
	key := ChatKey(connectionID)
	if err := c.List.PushFront(ctx, key, string(b)); err != nil {
		log.Printf("chat cache update failed: %v", err)
		return
	}
	if err := c.List.Trim(ctx, key, ChatMax); err != nil {
		log.Printf("chat cache trim failed: %v", err)
	}
	if err := c.List.Expire(ctx, key, ChatTTL); err != nil {
		log.Printf("chat cache expire failed: %v", err)
	}
}

// Recent returns up to limit messages in chronological order. The list is
// stored newest first, so the raw entries are reversed before returning.
// ok is false on a miss.
func (c *ChatCache) Recent(ctx context.Context, connectionID uint64, limit int) ([]model.Chat, bool) {
	raw, err := c.List.Range(ctx, ChatKey(connectionID), 0, int64(limit)-1)
	if err != nil {
		log.Printf("chat cache read failed: %v", err)
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}
	out := make([]model.Chat, len(raw))
	for i, item := range raw {
		var m model.Chat
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			log.Printf("chat cache entry corrupt, treating as miss: %v", err)
			return nil, false
		}
		out[len(raw)-1-i] = m
	}
	return out, true
}
