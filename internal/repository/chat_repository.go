package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// ChatRepo manages message rows in the `chats` table. Messages are
// append-only; there is no update or delete path.
type ChatRepo struct{ DB *sql.DB }

func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{DB: db} }

// Insert writes a message and populates m.ID. A zero CreatedAt is set to
// now.
func (r *ChatRepo) Insert(ctx context.Context, m *model.Chat) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO chats (connection_id, sender_id, message, created_at) VALUES (?,?,?,?)",
		m.ConnectionID, m.SenderID, m.Message, m.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// RecentByConnection returns the newest limit messages of a connection in
// descending creation order. Callers reverse to chronological order before
// responding.
func (r *ChatRepo) RecentByConnection(ctx context.Context, connectionID uint64, limit int) ([]model.Chat, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, connection_id, sender_id, message, created_at
		 FROM chats WHERE connection_id=?
		 ORDER BY created_at DESC LIMIT ?`,
		connectionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Chat, 0, limit)
	for rows.Next() {
		var m model.Chat
		if err := rows.Scan(&m.ID, &m.ConnectionID, &m.SenderID, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
