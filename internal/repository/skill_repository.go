package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// ErrSkillNotFound indicates that a skill post was not located.
var ErrSkillNotFound = errors.New("skill not found")

// FeedQuery defines filters and pagination for the skill feed. Cursor
// restricts to rows strictly older than the given timestamp; Search matches
// name/description case-insensitively; Department is an exact match on the
// owner's department. Limit is the number of rows to fetch (callers pass
// limit+1 to detect a further page).
type FeedQuery struct {
	Cursor     *time.Time
	Search     string
	Department string
	Limit      int
}

// SkillRepo manages skill posts and the joined feed reads.
type SkillRepo struct{ DB *sql.DB }

func NewSkillRepo(db *sql.DB) *SkillRepo { return &SkillRepo{DB: db} }

// Create inserts a skill post and populates s.ID. A zero CreatedAt is set
// to now.
func (r *SkillRepo) Create(ctx context.Context, s *model.Skill) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO skills (user_id, skill_name, description, image_url, created_at) VALUES (?,?,?,?,?)",
		s.UserID, s.SkillName, s.Description, s.ImageURL, s.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

const feedSelect = `SELECT sk.id, sk.user_id, sk.skill_name, sk.description, sk.image_url, sk.created_at,
       u.name, u.profile_pic, u.roll_number, u.department
FROM skills sk
JOIN users u ON u.id = sk.user_id`

// GetFeedByID reads one post back with the denormalized owner fields, as
// returned from the create endpoint and pushed into the feed cache.
func (r *SkillRepo) GetFeedByID(ctx context.Context, id uint64) (model.FeedSkill, error) {
	row := r.DB.QueryRowContext(ctx, feedSelect+" WHERE sk.id=? LIMIT 1", id)
	f, err := scanFeedSkill(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FeedSkill{}, ErrSkillNotFound
	}
	return f, err
}

// Feed returns enriched posts in descending creation order, applying the
// optional cursor, search and department filters.
func (r *SkillRepo) Feed(ctx context.Context, q FeedQuery) ([]model.FeedSkill, error) {
	where := []string{}
	args := []any{}

	if q.Cursor != nil {
		where = append(where, "sk.created_at < ?")
		args = append(args, *q.Cursor)
	}
	if q.Search != "" {
		pat := "%" + strings.ToLower(q.Search) + "%"
		where = append(where, "(LOWER(sk.skill_name) LIKE ? OR LOWER(sk.description) LIKE ?)")
		args = append(args, pat, pat)
	}
	if q.Department != "" {
		where = append(where, "u.department = ?")
		args = append(args, q.Department)
	}

	sqlStr := feedSelect
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}
	sqlStr += " ORDER BY sk.created_at DESC LIMIT ?"
	args = append(args, q.Limit)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.FeedSkill, 0, q.Limit)
	for rows.Next() {
		f, err := scanFeedSkill(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFeedSkill(scan func(...any) error) (model.FeedSkill, error) {
	var (
		f          model.FeedSkill
		img, uPic  sql.NullString
	)
	err := scan(&f.ID, &f.UserID, &f.SkillName, &f.Description, &img, &f.CreatedAt,
		&f.UserName, &uPic, &f.RollNumber, &f.Department)
	if err != nil {
		return model.FeedSkill{}, err
	}
	if img.Valid {
		f.ImageURL = &img.String
	}
	if uPic.Valid {
		f.UserPic = &uPic.String
	}
	return f, nil
}
