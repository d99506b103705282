package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/queue"
	"github.com/iliyamo/skill-swap/internal/repository"
	queue_publisher "github.com/iliyamo/skill-swap/internal/service"
)

// ConnectionHandler implements the connection lifecycle: create a pending
// request, list enriched connections and transition status. Publish is the
// event hook called after a successful acceptance; tests inject a stub and
// main wires the RabbitMQ publisher.
type ConnectionHandler struct {
	Users       *repository.UserRepo
	Connections *repository.ConnectionRepo
	Publish     func(ctx context.Context, event queue.ConnectionAcceptedEvent) error
}

func NewConnectionHandler(u *repository.UserRepo, conn *repository.ConnectionRepo) *ConnectionHandler {
	if u == nil || conn == nil {
		panic("nil repository passed to NewConnectionHandler")
	}
	return &ConnectionHandler{
		Users:       u,
		Connections: conn,
		Publish:     queue_publisher.PublishConnectionAccepted,
	}
}

type createConnectionReq struct {
	ReceiverID uint64 `json:"receiver_id"`
}

type updateConnectionReq struct {
	Status string `json:"status"`
}

// Create handles POST /v1/connections. The pair existence check covers both
// orderings and every status, so a rejected pair cannot be re-requested.
func (h *ConnectionHandler) Create(c echo.Context) error {
	var req createConnectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ReceiverID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Receiver ID is required"})
	}
	sender, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}

	conn, err := h.Connections.Create(c.Request().Context(), sender.ID, req.ReceiverID)
	if err != nil {
		if err == repository.ErrConnectionExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Connection already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create connection request"})
	}
	return c.JSON(http.StatusCreated, conn)
}

// List handles GET /v1/connections?status=all|pending|accepted|rejected.
func (h *ConnectionHandler) List(c echo.Context) error {
	user, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}
	status := c.QueryParam("status")
	if status == "" || status == "all" {
		status = ""
	}
	conns, err := h.Connections.ListForUser(c.Request().Context(), user.ID, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch connections"})
	}
	return c.JSON(http.StatusOK, conns)
}

// Update handles PUT /v1/connections/:id. The receiver may accept or
// reject; the sender may only reject (cancel). There is no terminal-state
// guard: an already accepted or rejected connection can be transitioned
// again.
func (h *ConnectionHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid connection id"})
	}
	var req updateConnectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != model.ConnectionAccepted && req.Status != model.ConnectionRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid status (accepted/rejected) is required"})
	}
	user, ok := resolveProfile(c, h.Users)
	if !ok {
		return nil
	}

	ctx := c.Request().Context()
	conn, err := h.Connections.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrConnectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Connection not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	canUpdate := conn.ReceiverID == user.ID ||
		(req.Status == model.ConnectionRejected && conn.SenderID == user.ID)
	if !canUpdate {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Not authorized to update this connection"})
	}

	updated, err := h.Connections.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update connection"})
	}

	if updated.Status == model.ConnectionAccepted && h.Publish != nil {
		// Best effort; the publisher logs its own failures.
		_ = h.Publish(ctx, queue.ConnectionAcceptedEvent{
			ConnectionID: updated.ID,
			SenderID:     updated.SenderID,
			ReceiverID:   updated.ReceiverID,
			ReceiverName: user.Name,
			AcceptedAt:   updated.UpdatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, updated)
}
