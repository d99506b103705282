package model

import "time"

// Chat is a single chat message in the `chats` table. Messages belong to a
// connection, are immutable once written and are never deleted. Rows are
// ordered by CreatedAt on read; this is the only ordering guarantee.
//
// Fields:
//
//	ID           – primary key identifier.
//	ConnectionID – parent connection.
//	SenderID     – user who wrote the message.
//	Message      – trimmed message text.
//	CreatedAt    – creation timestamp.
type Chat struct {
	ID           uint64    `json:"id"`
	ConnectionID uint64    `json:"connection_id"`
	SenderID     uint64    `json:"sender_id"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
