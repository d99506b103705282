package model

import "time"

// Account represents a credential record in the `accounts` table. Accounts
// exist purely so callers can obtain a bearer token; the student profile
// lives in the `users` table and references the account through
// User.AuthID. Only the bcrypt hash of the password is stored.
//
// Fields:
//
//	ID           – primary key identifier of the account.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
type Account struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is a student profile as stored in the `users` table. AuthID holds the
// external identity reference (the token subject) and is immutable after
// onboarding; the remaining profile fields are mutable. Skills is stored
// JSON-encoded in a TEXT column.
//
// Fields:
//
//	ID         – primary key identifier.
//	AuthID     – unique external identity reference.
//	Name       – display name.
//	RollNumber – unique institution roll number.
//	Department – department name, derivable from the roll number.
//	Year       – year of study (1..5).
//	Bio        – free-text bio.
//	Skills     – list of skill tags.
//	ProfilePic – optional profile picture URL.
//	CreatedAt  – creation timestamp.
//	UpdatedAt  – last update timestamp.
type User struct {
	ID         uint64    `json:"id"`
	AuthID     string    `json:"auth_id"`
	Name       string    `json:"name"`
	RollNumber string    `json:"roll_number"`
	Department string    `json:"department"`
	Year       int       `json:"year"`
	Bio        string    `json:"bio"`
	Skills     []string  `json:"skills"`
	ProfilePic *string   `json:"profile_pic"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicProfile is the projection of a user attached to connection rows so
// clients can render the other participant without a second lookup.
type PublicProfile struct {
	Name       string  `json:"name"`
	ProfilePic *string `json:"profile_pic"`
	RollNumber string  `json:"roll_number"`
	Department string  `json:"department"`
}
