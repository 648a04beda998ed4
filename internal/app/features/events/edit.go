// internal/app/features/events/edit.go
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

// updateEventInput defines validation rules for updating an event. The
// roster cannot be edited here; it only changes through assignment.
type updateEventInput struct {
	Name        string   `json:"name" validate:"omitempty,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Urgency     string   `json:"urgency" validate:"omitempty,oneof=low medium high"`
	ZipCode     string   `json:"zip_code" validate:"required,len=5,numeric"`
	Skills      []string `json:"skills" validate:"required,min=1,dive,min=1,max=100"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
}

// HandleUpdate processes PUT /api/events/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	var in updateEventInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid event data: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := eventstore.New(h.DB)
	if err := store.UpdateInfo(ctx, id, in.Name, in.Description, in.Urgency, in.ZipCode, in.Date, in.Skills); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Event not found")
			return
		}
		h.Log.Error("update event failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating event")
		return
	}

	updated, err := store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("reload event failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating event")
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}
