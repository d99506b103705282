package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// ErrConnectionNotFound indicates that a connection was not located, or
// that the caller is not a participant of it. The two cases are deliberately
// indistinguishable so that non-participants cannot probe for existence.
var ErrConnectionNotFound = errors.New("connection not found")

// ErrConnectionExists signals that a connection between the pair already
// exists in either direction, regardless of its status.
var ErrConnectionExists = errors.New("connection already exists")

// ConnectionRepo manages the tri-state relationship rows between two users.
type ConnectionRepo struct{ DB *sql.DB }

func NewConnectionRepo(db *sql.DB) *ConnectionRepo { return &ConnectionRepo{DB: db} }

const connColumns = "id, sender_id, receiver_id, status, created_at, updated_at"

// Create inserts a pending connection after checking that no row exists for
// the pair in either order. The check and the insert are separate
// statements, so two concurrent requests for the same pair can both pass
// the check and produce duplicate rows; an accepted risk, not a guarantee.
func (r *ConnectionRepo) Create(ctx context.Context, senderID, receiverID uint64) (model.Connection, error) {
	var existing uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT id FROM connections
		 WHERE (sender_id=? AND receiver_id=?) OR (sender_id=? AND receiver_id=?)
		 LIMIT 1`,
		senderID, receiverID, receiverID, senderID).Scan(&existing)
	if err == nil {
		return model.Connection{}, ErrConnectionExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Connection{}, err
	}

	now := time.Now().UTC()
	c := model.Connection{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     model.ConnectionPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO connections (sender_id, receiver_id, status, created_at, updated_at) VALUES (?,?,?,?,?)",
		c.SenderID, c.ReceiverID, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return model.Connection{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Connection{}, err
	}
	c.ID = uint64(id)
	return c, nil
}

// GetByID fetches a connection regardless of membership.
func (r *ConnectionRepo) GetByID(ctx context.Context, id uint64) (model.Connection, error) {
	var c model.Connection
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+connColumns+" FROM connections WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.SenderID, &c.ReceiverID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Connection{}, ErrConnectionNotFound
	}
	return c, err
}

// GetForParticipant fetches a connection only when userID is one of its two
// participants, optionally restricted to accepted status. Absence,
// non-membership and (when required) a non-accepted status all surface as
// ErrConnectionNotFound.
func (r *ConnectionRepo) GetForParticipant(ctx context.Context, id, userID uint64, requireAccepted bool) (model.Connection, error) {
	q := "SELECT " + connColumns + " FROM connections WHERE id=? AND (sender_id=? OR receiver_id=?)"
	args := []any{id, userID, userID}
	if requireAccepted {
		q += " AND status=?"
		args = append(args, model.ConnectionAccepted)
	}
	var c model.Connection
	err := r.DB.QueryRowContext(ctx, q+" LIMIT 1", args...).
		Scan(&c.ID, &c.SenderID, &c.ReceiverID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Connection{}, ErrConnectionNotFound
	}
	return c, err
}

// ListForUser returns every connection where userID is sender or receiver,
// newest first, enriched with the other participant's public profile. An
// empty status means all statuses.
func (r *ConnectionRepo) ListForUser(ctx context.Context, userID uint64, status string) ([]model.ConnectionWithUser, error) {
	q := `SELECT c.id, c.sender_id, c.receiver_id, c.status, c.created_at, c.updated_at,
	             s.name, s.profile_pic, s.roll_number, s.department,
	             r.name, r.profile_pic, r.roll_number, r.department
	      FROM connections c
	      JOIN users s ON s.id = c.sender_id
	      JOIN users r ON r.id = c.receiver_id
	      WHERE (c.sender_id=? OR c.receiver_id=?)`
	args := []any{userID, userID}
	if status != "" {
		q += " AND c.status=?"
		args = append(args, status)
	}
	q += " ORDER BY c.created_at DESC"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ConnectionWithUser, 0)
	for rows.Next() {
		var (
			cw               model.ConnectionWithUser
			sender, receiver model.PublicProfile
			sPic, rPic       sql.NullString
		)
		if err := rows.Scan(
			&cw.ID, &cw.SenderID, &cw.ReceiverID, &cw.Status, &cw.CreatedAt, &cw.UpdatedAt,
			&sender.Name, &sPic, &sender.RollNumber, &sender.Department,
			&receiver.Name, &rPic, &receiver.RollNumber, &receiver.Department,
		); err != nil {
			return nil, err
		}
		if sPic.Valid {
			sender.ProfilePic = &sPic.String
		}
		if rPic.Valid {
			receiver.ProfilePic = &rPic.String
		}
		cw.IsSender = cw.SenderID == userID
		if cw.IsSender {
			cw.OtherUser = receiver
		} else {
			cw.OtherUser = sender
		}
		out = append(out, cw)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status and updated_at of a connection and returns
// the updated row. There is no guard against re-transitioning an already
// accepted or rejected connection; callers rely on the permissiveness (a
// receiver may still reject after accepting).
func (r *ConnectionRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Connection, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE connections SET status=?, updated_at=? WHERE id=?",
		status, time.Now().UTC(), id)
	if err != nil {
		return model.Connection{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// The row may also exist with identical values; re-read to decide.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return model.Connection{}, getErr
		}
	}
	return r.GetByID(ctx, id)
}
