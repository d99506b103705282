package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/utils"
)

const testSecret = "middleware-test-secret"

func runJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenSub string
	next := func(c echo.Context) error {
		seenSub, _ = c.Get("auth_id").(string)
		return c.NoContent(http.StatusOK)
	}
	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, seenSub
}

func TestJWTAuthValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 42, 15)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	rec, sub := runJWT(t, "Bearer "+access.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if sub != "42" {
		t.Errorf("expected auth_id 42, got %q", sub)
	}
}

func TestJWTAuthRejections(t *testing.T) {
	cases := []struct {
		name string
		auth func(t *testing.T) string
	}{
		{"missing header", func(t *testing.T) string { return "" }},
		{"not bearer", func(t *testing.T) string { return "Basic abc" }},
		{"garbage token", func(t *testing.T) string { return "Bearer not.a.jwt" }},
		{"wrong secret", func(t *testing.T) string {
			access, err := utils.NewAccessToken("some-other-secret", 42, 15)
			if err != nil {
				t.Fatalf("failed to issue token: %v", err)
			}
			return "Bearer " + access.Token
		}},
		{"expired", func(t *testing.T) string {
			access, err := utils.NewAccessToken(testSecret, 42, -5)
			if err != nil {
				t.Fatalf("failed to issue token: %v", err)
			}
			return "Bearer " + access.Token
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, sub := runJWT(t, tc.auth(t))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			if sub != "" {
				t.Errorf("auth_id must not be set, got %q", sub)
			}
		})
	}
}
