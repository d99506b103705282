package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"

	"github.com/iliyamo/skill-swap/internal/cache"
	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// The schema mirrors the MySQL tables using sqlite types, same as the
// repository tests.
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

// testEnv wires the handlers against an in-memory sqlite database and an
// in-process cache, the same graph main builds against MySQL and Redis.
type testEnv struct {
	e *echo.Echo

	db       *sql.DB
	users    *repository.UserRepo
	conns    *repository.ConnectionRepo
	chats    *repository.ChatRepo
	skills   *repository.SkillRepo
	sessions *repository.SessionRepo

	mem  *cache.Memory
	feed *cache.FeedCache
	chat *cache.ChatCache

	userH    *UserHandler
	connH    *ConnectionHandler
	chatH    *ChatHandler
	skillH   *SkillHandler
	sessionH *SessionHandler

	seq int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	env := &testEnv{
		e:        echo.New(),
		db:       db,
		users:    repository.NewUserRepo(db),
		conns:    repository.NewConnectionRepo(db),
		chats:    repository.NewChatRepo(db),
		skills:   repository.NewSkillRepo(db),
		sessions: repository.NewSessionRepo(db),
		mem:      cache.NewMemory(),
	}
	env.feed = cache.NewFeedCache(env.mem)
	env.chat = cache.NewChatCache(env.mem)

	env.userH = NewUserHandler(env.users)
	env.connH = NewConnectionHandler(env.users, env.conns)
	env.connH.Publish = nil // tests that care inject a stub
	env.chatH = NewChatHandler(env.users, env.conns, env.chats, env.chat)
	env.skillH = NewSkillHandler(env.users, env.skills, env.feed)
	env.sessionH = NewSessionHandler(env.users, env.conns, env.sessions)
	return env
}

// newContext builds an echo context for a handler call. authID is the JWT
// subject the middleware would have stored; empty means unauthenticated.
func (env *testEnv) newContext(method, target, body, authID string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if authID != "" {
		c.Set("auth_id", authID)
	}
	return c, rec
}

// seedProfile inserts a profile row directly, bypassing the handler.
func (env *testEnv) seedProfile(t *testing.T, name string) model.User {
	t.Helper()
	env.seq++
	u := model.User{
		AuthID:     fmt.Sprintf("acct-%s-%d", name, env.seq),
		Name:       name,
		RollNumber: fmt.Sprintf("2021CS1%04d", env.seq),
		Department: "Computer Science",
		Year:       3,
	}
	if err := env.users.Create(context.Background(), &u); err != nil {
		t.Fatalf("failed to seed profile %s: %v", name, err)
	}
	return u
}

// seedSkillAt inserts a skill with an explicit creation time so feed
// ordering is deterministic.
func (env *testEnv) seedSkillAt(t *testing.T, userID uint64, name string, at time.Time) model.Skill {
	t.Helper()
	s := model.Skill{
		UserID:      userID,
		SkillName:   name,
		Description: "lessons in " + name,
		CreatedAt:   at,
	}
	if err := env.skills.Create(context.Background(), &s); err != nil {
		t.Fatalf("failed to seed skill %s: %v", name, err)
	}
	return s
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// errMessage pulls the "error" field out of a failure response.
func errMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	decodeBody(t, rec, &body)
	msg, _ := body["error"].(string)
	return msg
}
