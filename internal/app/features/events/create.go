// internal/app/features/events/create.go
package events

import (
	"context"
	"net/http"

	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.uber.org/zap"
)

// createEventInput defines validation rules for creating an event.
// Zip, skills, and date are required up front: an event missing them
// could never be matched.
type createEventInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Urgency     string   `json:"urgency" validate:"omitempty,oneof=low medium high"`
	ZipCode     string   `json:"zip_code" validate:"required,len=5,numeric"`
	Skills      []string `json:"skills" validate:"required,min=1,dive,min=1,max=100"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
}

// HandleCreate processes POST /api/events.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createEventInput
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

	created, err := eventstore.New(h.DB).Create(ctx, models.Event{
		Name:        in.Name,
		Description: in.Description,
		Urgency:     in.Urgency,
		ZipCode:     in.ZipCode,
		Skills:      in.Skills,
		Date:        in.Date,
	})
	if err != nil {
		h.Log.Error("create event failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error creating event")
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
