// internal/app/features/events/view.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeView handles GET /api/events/{id}. The returned roster is always
// an array, never null, even for legacy documents.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ev, err := eventstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Event not found")
			return
		}
		h.Log.Error("load event failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error loading event")
		return
	}

	httpjson.Write(w, http.StatusOK, ev)
}
