package model

import "time"

// Session is a scheduled meeting between the two participants of an
// accepted connection. Date and Time are kept as the client-supplied
// strings ("2006-01-02" and "15:04"); the future-date check composes them
// at validation time.
//
// Fields:
//
//	ID           – primary key identifier.
//	ConnectionID – parent connection (must be accepted at creation).
//	Date         – session date, "YYYY-MM-DD".
//	Time         – session start, "HH:MM".
//	Place        – optional meeting place.
//	SessionCount – number of sessions agreed, defaults to 1.
//	CreatedAt    – creation timestamp.
type Session struct {
	ID           uint64    `json:"id"`
	ConnectionID uint64    `json:"connection_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Place        *string   `json:"place"`
	SessionCount int       `json:"session_count"`
	CreatedAt    time.Time `json:"created_at"`
}
