// Package queue defines message payloads exchanged over the message broker.
package queue

// ConnectionAcceptedEvent is published when a receiver accepts a connection
// request. It carries enough for downstream consumers (notification mailer,
// analytics) to act without querying the primary database.
type ConnectionAcceptedEvent struct {
	ConnectionID uint64 `json:"connection_id"`
	SenderID     uint64 `json:"sender_id"`
	ReceiverID   uint64 `json:"receiver_id"`
	ReceiverName string `json:"receiver_name"`
	AcceptedAt   string `json:"accepted_at"`
}
