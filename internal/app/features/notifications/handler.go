// internal/app/features/notifications/handler.go
package notifications

import (
	"context"
	"errors"
	"net/http"

	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// listLimit caps how many notifications one request returns.
const listLimit = 100

// Handler is the feature-level entry point for notifications.
// Creation happens in the assignments feature; this one lists and
// marks records read.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a notifications Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

// listResponse is the body for ServeListForUser.
type listResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

// ServeListForUser handles GET /api/notifications/{userId}, newest first.
func (h *Handler) ServeListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notificationstore.New(h.DB)
	rows, err := store.ListForUser(ctx, userID, listLimit)
	if err != nil {
		h.Log.Error("list notifications failed",
			zap.String("user_id", userID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing notifications")
		return
	}
	unread, err := store.CountUnread(ctx, userID)
	if err != nil {
		h.Log.Error("count unread notifications failed",
			zap.String("user_id", userID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing notifications")
		return
	}

	httpjson.Write(w, http.StatusOK, listResponse{Notifications: rows, Unread: unread})
}

// HandleMarkRead handles POST /api/notifications/{id}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := notificationstore.New(h.DB).MarkRead(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.Log.Error("mark notification read failed",
			zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating notification")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Notification marked read"})
}

// HandleMarkAllRead handles POST /api/notifications/readAll/{userId}.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := notificationstore.New(h.DB).MarkAllRead(ctx, userID)
	if err != nil {
		h.Log.Error("mark all notifications read failed",
			zap.String("user_id", userID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating notifications")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Notifications marked read",
		"updated": updated,
	})
}
