package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// createSession drives POST /v1/sessions as the given user.
func createSession(t *testing.T, env *testEnv, authID, body string) (*httptest.ResponseRecorder, int) {
	t.Helper()
	c, rec := env.newContext(http.MethodPost, "/v1/sessions", body, authID)
	if err := env.sessionH.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, rec.Code
}

func TestSessionCreateGatedOnAcceptance(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedProfile(t, "alice")
	bob := env.seedProfile(t, "bob")
	carol := env.seedProfile(t, "carol")
	ctx := context.Background()
	conn, _ := env.conns.Create(ctx, alice.ID, bob.ID)

	future := time.Now().AddDate(0, 0, 7)
	body := fmt.Sprintf(`{"connection_id":%d,"date":%q,"time":"15:00"}`,
		conn.ID, future.Format("2006-01-02"))

	rec, code := createSession(t, env, alice.AuthID, body)
	if code != http.StatusNotFound {
		t.Errorf("pending connection: expected 404, got %d", code)
	}
	if msg := errMessage(t, rec); msg != "Connection not found or not accepted" {
		t.Errorf("unexpected error message %q", msg)
	}

	env.conns.UpdateStatus(ctx, conn.ID, model.ConnectionAccepted)

	if _, code := createSession(t, env, carol.AuthID, body); code != http.StatusNotFound {
		t.Errorf("outsider: expected 404, got %d", code)
	}

	rec, code = createSession(t, env, alice.AuthID, body)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, rec.Body.String())
	}
	var s model.Session
	decodeBody(t, rec, &s)
	if s.SessionCount != 1 {
		t.Errorf("expected default session_count 1, got %d", s.SessionCount)
	}
}

func TestSessionCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedProfile(t, "alice")
	bob := env.seedProfile(t, "bob")
	ctx := context.Background()
	conn, _ := env.conns.Create(ctx, alice.ID, bob.ID)
	env.conns.UpdateStatus(ctx, conn.ID, model.ConnectionAccepted)

	rec, code := createSession(t, env, alice.AuthID, `{"date":"2030-01-01","time":"10:00"}`)
	if code != http.StatusBadRequest {
		t.Errorf("missing connection_id: expected 400, got %d", code)
	}
	if msg := errMessage(t, rec); msg != "Connection ID, date, and time are required" {
		t.Errorf("unexpected error message %q", msg)
	}

	body := fmt.Sprintf(`{"connection_id":%d,"date":"not-a-date","time":"10:00"}`, conn.ID)
	if _, code := createSession(t, env, alice.AuthID, body); code != http.StatusBadRequest {
		t.Errorf("malformed date: expected 400, got %d", code)
	}

	past := time.Now().AddDate(0, 0, -1)
	body = fmt.Sprintf(`{"connection_id":%d,"date":%q,"time":"10:00"}`, conn.ID, past.Format("2006-01-02"))
	rec, code = createSession(t, env, alice.AuthID, body)
	if code != http.StatusBadRequest {
		t.Errorf("past date: expected 400, got %d", code)
	}
	if msg := errMessage(t, rec); msg != "Session must be scheduled for a future date and time" {
		t.Errorf("unexpected error message %q", msg)
	}
}

func TestSessionList(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedProfile(t, "alice")
	bob := env.seedProfile(t, "bob")
	carol := env.seedProfile(t, "carol")
	ctx := context.Background()
	conn, _ := env.conns.Create(ctx, alice.ID, bob.ID)

	for _, s := range []model.Session{
		{ConnectionID: conn.ID, Date: "2027-05-02", Time: "10:00"},
		{ConnectionID: conn.ID, Date: "2027-05-01", Time: "10:00"},
	} {
		s := s
		if err := env.sessions.Create(ctx, &s); err != nil {
			t.Fatalf("failed to seed session: %v", err)
		}
	}

	// Membership is enough to list; acceptance is not required.
	c, rec := env.newContext(http.MethodGet, fmt.Sprintf("/v1/sessions?connection_id=%d", conn.ID), "", bob.AuthID)
	if err := env.sessionH.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out struct {
		Sessions []model.Session `json:"sessions"`
	}
	decodeBody(t, rec, &out)
	if len(out.Sessions) != 2 || out.Sessions[0].Date != "2027-05-01" {
		t.Errorf("sessions should come back soonest first: %+v", out.Sessions)
	}

	c, rec = env.newContext(http.MethodGet, fmt.Sprintf("/v1/sessions?connection_id=%d", conn.ID), "", carol.AuthID)
	if err := env.sessionH.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("outsider: expected 404, got %d", rec.Code)
	}

	c, rec = env.newContext(http.MethodGet, "/v1/sessions", "", alice.AuthID)
	if err := env.sessionH.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing connection_id: expected 400, got %d", rec.Code)
	}
}
