package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// SessionRepo manages scheduled meeting rows for accepted connections.
// Membership and status checks happen against ConnectionRepo before any
// write here.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session and populates s.ID.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.SessionCount <= 0 {
		s.SessionCount = 1
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sessions (connection_id, date, time, place, session_count, created_at) VALUES (?,?,?,?,?,?)",
		s.ConnectionID, s.Date, s.Time, s.Place, s.SessionCount, s.CreatedAt)
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

// ListByConnection returns a connection's sessions ordered by date then
// time ascending.
func (r *SessionRepo) ListByConnection(ctx context.Context, connectionID uint64) ([]model.Session, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, connection_id, date, time, place, session_count, created_at
		 FROM sessions WHERE connection_id=?
		 ORDER BY date ASC, time ASC`,
		connectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Session, 0)
	for rows.Next() {
		var (
			s     model.Session
			place sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.ConnectionID, &s.Date, &s.Time, &place, &s.SessionCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		if place.Valid {
			s.Place = &place.String
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
