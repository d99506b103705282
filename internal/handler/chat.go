package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/cache"
	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// ChatHandler implements per-connection messaging. Send requires the
// connection to be accepted; List only requires membership, so participants
// can still read history on a pending or rejected connection. The two
// checks are deliberately separate capability lookups.
type ChatHandler struct {
	Users       *repository.UserRepo
	Connections *repository.ConnectionRepo
	Chats       *repository.ChatRepo
	Cache       *cache.ChatCache
}

func NewChatHandler(u *repository.UserRepo, conn *repository.ConnectionRepo, chats *repository.ChatRepo, cc *cache.ChatCache) *ChatHandler {
	if u == nil || conn == nil || chats == nil || cc == nil {
		panic("nil dependency passed to NewChatHandler")
	}
	return &ChatHandler{Users: u, Connections: conn, Chats: chats, Cache: cc}
}

type sendMessageReq struct {
	Message string `json:"message"`
}

// List handles GET /v1/chats/:connectionId?limit=N (default 50). Cache
// first: a hit returns the recent window in chronological order with
// hasMore=false, since the cache only ever holds recent history. On a miss
// the store serves the newest rows, and a lazy single-entry backfill pushes
// only the newest message back into the cache; the window refills through
// natural send traffic, one message at a time.
func (h *ChatHandler) List(c echo.Context) error {
	connID, err := strconv.ParseUint(c.Param("connectionId"), 10, 64)
	if err != nil || connID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid connection id"})
	}
	limit := cache.ChatMax
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
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

	if msgs, hit := h.Cache.Recent(ctx, connID, limit); hit {
		return c.JSON(http.StatusOK, echo.Map{
			"messages": msgs,
			"hasMore":  false,
		})
	}

	rows, err := h.Chats.RecentByConnection(ctx, connID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch messages"})
	}
	// rows are newest first; flip to chronological for the response.
	msgs := make([]model.Chat, len(rows))
	for i, m := range rows {
		msgs[len(rows)-1-i] = m
	}
	if len(msgs) > 0 {
		// Lazy single-entry backfill.
		h.Cache.Push(ctx, connID, msgs[len(msgs)-1])
	}
	return c.JSON(http.StatusOK, echo.Map{
		"messages": msgs,
		"hasMore":  len(rows) == limit,
	})
}

// Send handles POST /v1/chats/:connectionId. A non-participant and a
// participant of a non-accepted connection get the same 404; callers
// cannot distinguish the two.
func (h *ChatHandler) Send(c echo.Context) error {
	connID, err := strconv.ParseUint(c.Param("connectionId"), 10, 64)
	if err != nil || connID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid connection id"})
	}
	var req sendMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message is required"})
	}
	user, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}

	ctx := c.Request().Context()
	if _, err := h.Connections.GetForParticipant(ctx, connID, user.ID, true); err != nil {
		if err == repository.ErrConnectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Connection not found or not accepted"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	msg := model.Chat{
		ConnectionID: connID,
		SenderID:     user.ID,
		Message:      req.Message,
	}
	if err := h.Chats.Insert(ctx, &msg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create message"})
	}
	h.Cache.Push(ctx, connID, msg)
	return c.JSON(http.StatusCreated, msg)
}
