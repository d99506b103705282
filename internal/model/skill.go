package model

import "time"

// Skill is a teachable-skill post in the `skills` table. Posts are created
// by their owner and immutable afterwards.
//
// Fields:
//
//	ID          – primary key identifier.
//	UserID      – owner of the post.
//	SkillName   – name of the skill being offered.
//	Description – free-text description.
//	ImageURL    – optional illustration URL.
//	CreatedAt   – creation timestamp, also the feed pagination cursor.
type Skill struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	SkillName   string    `json:"skill_name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeedSkill is a skill enriched with denormalized owner fields for feed
// display. This is also the shape serialized into the feed cache, so the
// department is carried along for client-side filtering of cached entries.
type FeedSkill struct {
	Skill
	UserName   string  `json:"user_name"`
	UserPic    *string `json:"user_pic"`
	RollNumber string  `json:"roll_number"`
	Department string  `json:"department"`
}
