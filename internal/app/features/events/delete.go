// internal/app/features/events/delete.go
package events

import (
	"context"
	"net/http"

	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete processes DELETE /api/events/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := eventstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete event failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error deleting event")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Event not found")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}
