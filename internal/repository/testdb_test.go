package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iliyamo/skill-swap/internal/model"
)

// The schema mirrors the MySQL tables using sqlite types. Repository SQL is
// written to run unchanged on both engines.
const testSchema = `
CREATE TABLE accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at DATETIME NOT NULL
);
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    auth_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    roll_number TEXT NOT NULL UNIQUE,
    department TEXT NOT NULL,
    year INTEGER NOT NULL,
    bio TEXT NOT NULL DEFAULT '',
    skills TEXT NOT NULL DEFAULT '[]',
    profile_pic TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
CREATE TABLE connections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sender_id INTEGER NOT NULL,
    receiver_id INTEGER NOT NULL,
    status TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
CREATE TABLE chats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    connection_id INTEGER NOT NULL,
    sender_id INTEGER NOT NULL,
    message TEXT NOT NULL,
    created_at DATETIME NOT NULL
);
CREATE TABLE skills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    skill_name TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url TEXT,
    created_at DATETIME NOT NULL
);
CREATE TABLE sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    connection_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    place TEXT,
    session_count INTEGER NOT NULL,
    created_at DATETIME NOT NULL
);`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var userSeq int

// seedUser inserts a profile and returns it.
func seedUser(t *testing.T, users *UserRepo, name string) model.User {
	t.Helper()
	userSeq++
	u := model.User{
		AuthID:     fmt.Sprintf("acct-%s-%d", name, userSeq),
		Name:       name,
		RollNumber: fmt.Sprintf("2021CS1%04d", userSeq),
		Department: "Computer Science",
		Year:       3,
	}
	if err := users.Create(context.Background(), &u); err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return u
}

// seedSkill inserts a skill with an explicit creation time so ordering and
// cursor tests are deterministic.
func seedSkill(t *testing.T, skills *SkillRepo, userID uint64, name string, at time.Time) model.Skill {
	t.Helper()
	s := model.Skill{
		UserID:      userID,
		SkillName:   name,
		Description: "lessons in " + name,
		CreatedAt:   at,
	}
	if err := skills.Create(context.Background(), &s); err != nil {
		t.Fatalf("failed to seed skill %s: %v", name, err)
	}
	return s
}
