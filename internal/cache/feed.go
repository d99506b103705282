package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/iliyamo/skill-swap/internal/model"
)

// FeedCache holds the newest-first list of enriched skill posts under
// FeedRecentKey. All methods swallow cache errors after logging them; a
// failed read is a miss and a failed write is a no-op.
type FeedCache struct {
	List ListCache
}

func NewFeedCache(list ListCache) *FeedCache {
	return &FeedCache{List: list}
}

// Recent returns up to limit cached posts, newest first. ok is false on a
// miss (empty list, corrupt entries or cache failure).
func (f *FeedCache) Recent(ctx context.Context, limit int) ([]model.FeedSkill, bool) {
	raw, err := f.List.Range(ctx, FeedRecentKey, 0, int64(limit)-1)
	if err != nil {
		log.Printf("feed cache read failed: %v", err)
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}
	out := make([]model.FeedSkill, 0, len(raw))
	for _, item := range raw {
		var s model.FeedSkill
		if err := json.Unmarshal([]byte(item), &s); err != nil {
			log.Printf("feed cache entry corrupt, treating as miss: %v", err)
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Store replaces the cached feed with skills (newest first), trimmed to
// FeedMax entries.
func (f *FeedCache) Store(ctx context.Context, skills []model.FeedSkill) {
	vals := make([]string, 0, len(skills))
	for _, s := range skills {
		b, err := json.Marshal(s)
		if err != nil {
			log.Printf("feed cache marshal failed: %v", err)
			return
		}
		vals = append(vals, string(b))
	}
	if err := f.List.Replace(ctx, FeedRecentKey, vals); err != nil {
		log.Printf("feed cache update failed: %v", err)
		return
	}
	if err := f.List.Trim(ctx, FeedRecentKey, FeedMax); err != nil {
		log.Printf("feed cache trim failed: %v", err)
	}
}

// Prepend performs the read-modify-write done after a skill is created:
// fetch up to FeedMax cached entries, put the new post in front and write
// the combined list back.
func (f *FeedCache) Prepend(ctx context.Context, s model.FeedSkill) {
	current, _ := f.Recent(ctx, FeedMax)
	f.Store(ctx, append([]model.FeedSkill{s}, current...))
}
