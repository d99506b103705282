package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// SessionHandler schedules meetings for accepted connections. It shares
// the chat authorization pattern: creating requires an accepted connection
// including the caller, listing only requires membership.
type SessionHandler struct {
	Users       *repository.UserRepo
	Connections *repository.ConnectionRepo
	Sessions    *repository.SessionRepo
}

func NewSessionHandler(u *repository.UserRepo, conn *repository.ConnectionRepo, s *repository.SessionRepo) *SessionHandler {
	if u == nil || conn == nil || s == nil {
		panic("nil repository passed to NewSessionHandler")
	}
	return &SessionHandler{Users: u, Connections: conn, Sessions: s}
}

type createSessionReq struct {
	ConnectionID uint64  `json:"connection_id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Place        *string `json:"place"`
	SessionCount int     `json:"session_count"`
}

// Create handles POST /v1/sessions.
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ConnectionID == 0 || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Connection ID, date, and time are required"})
	}
	user, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}

	ctx := c.Request().Context()
	if _, err := h.Connections.GetForParticipant(ctx, req.ConnectionID, user.ID, true); err != nil {
		if err == repository.ErrConnectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Connection not found or not accepted"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	when, err := time.ParseInLocation("2006-01-02T15:04", req.Date+"T"+req.Time, time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date or time"})
	}
	if !when.After(time.Now()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Session must be scheduled for a future date and time"})
	}

	s := model.Session{
		ConnectionID: req.ConnectionID,
		Date:         req.Date,
		Time:         req.Time,
		Place:        req.Place,
		SessionCount: req.SessionCount,
	}
	if err := h.Sessions.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create session"})
	}
	return c.JSON(http.StatusCreated, s)
}

// List handles GET /v1/sessions?connection_id=N.
func (h *SessionHandler) List(c echo.Context) error {
	idStr := c.QueryParam("connection_id")
	if idStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Connection ID is required"})
	}
	connID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || connID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid connection id"})
	}
	user, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}

	ctx := c.Request().Context()
	if _, err := h.Connections.GetForParticipant(ctx, connID, user.ID, false); err != nil {
		if err == repository.ErrConnectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Connection not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	sessions, err := h.Sessions.ListByConnection(ctx, connID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sessions": sessions})
}
