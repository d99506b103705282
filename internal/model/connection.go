package model

import "time"

// Connection status values. A connection is created pending and moves to
// accepted or rejected; the product treats those as terminal but the update
// path deliberately does not enforce that.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

// Connection is the mutual relationship record between two users, one row
// per unordered pair. The pair uniqueness is enforced by a pre-insert
// existence check against both orderings, not by a database constraint.
//
// Fields:
//
//	ID         – primary key identifier.
//	SenderID   – user who initiated the request.
//	ReceiverID – user who received the request.
//	Status     – pending, accepted or rejected.
//	CreatedAt  – creation timestamp.
//	UpdatedAt  – last status change timestamp.
type Connection struct {
	ID         uint64    `json:"id"`
	SenderID   uint64    `json:"sender_id"`
	ReceiverID uint64    `json:"receiver_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ConnectionWithUser is a connection enriched for listing: the other
// participant's public profile plus whether the requesting user initiated
// the connection.
type ConnectionWithUser struct {
	Connection
	OtherUser PublicProfile `json:"other_user"`
	IsSender  bool          `json:"is_sender"`
}
