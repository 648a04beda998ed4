// internal/app/features/assignments/handler.go
package assignments

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/matcher"
	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for volunteer assignments.
type Handler struct {
	Matcher       *matcher.Matcher
	Notifications *notificationstore.Store
	Log           *zap.Logger
}

// NewHandler constructs an assignments Handler.
func NewHandler(m *matcher.Matcher, notifications *notificationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Matcher:       m,
		Notifications: notifications,
		Log:           logger,
	}
}

// assignResponse is the success body for HandleAssign.
type assignResponse struct {
	Message string       `json:"message"`
	Event   models.Event `json:"event"`
}

const (
	msgAssigned         = "Volunteer assigned to event successfully"
	msgAssignedFallback = "No matching event found; volunteer assigned to fallback event"
)

// HandleAssign handles
// POST /api/volunteerAssignments/assignVolunteer/{volunteerId}.
//
// It runs the matcher once and maps every failure kind to its own
// status and message; nothing is merged or hidden. On success it also
// records a notification for the volunteer. A notification failure is
// logged, not returned, since the assignment already happened.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	volunteerID := chi.URLParam(r, "volunteerId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res, err := h.Matcher.Assign(ctx, volunteerID)
	if err != nil {
		h.writeAssignError(w, volunteerID, err)
		return
	}

	msg := msgAssigned
	if res.Fallback {
		msg = msgAssignedFallback
	}

	h.notifyAssigned(ctx, volunteerID, res.Event)
	httpjson.Write(w, http.StatusOK, assignResponse{Message: msg, Event: res.Event})
}

func (h *Handler) writeAssignError(w http.ResponseWriter, volunteerID string, err error) {
	switch {
	case errors.Is(err, matcher.ErrInvalidID):
		httpjson.Error(w, http.StatusBadRequest, "Invalid volunteer ID format")
	case errors.Is(err, matcher.ErrIncompleteVolunteer):
		httpjson.Error(w, http.StatusBadRequest, "Volunteer data is incomplete")
	case errors.Is(err, matcher.ErrAlreadyAssigned):
		httpjson.Error(w, http.StatusBadRequest, "Volunteer already assigned to this event")
	case errors.Is(err, matcher.ErrVolunteerNotFound):
		httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
	case errors.Is(err, matcher.ErrFallbackEventNotFound):
		h.Log.Error("fallback event missing; check fallback_event_id",
			zap.String("volunteer_id", volunteerID))
		httpjson.Error(w, http.StatusNotFound, "Fallback event not found")
	case errors.Is(err, matcher.ErrAssignmentFailed):
		h.Log.Warn("assignment update modified nothing",
			zap.String("volunteer_id", volunteerID))
		httpjson.Error(w, http.StatusInternalServerError, "Error assigning volunteer")
	default:
		h.Log.Error("assign volunteer failed",
			zap.String("volunteer_id", volunteerID),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error assigning volunteer")
	}
}

func (h *Handler) notifyAssigned(ctx context.Context, volunteerID string, ev models.Event) {
	vid, err := primitive.ObjectIDFromHex(volunteerID)
	if err != nil {
		return // the matcher already validated the id
	}
	msg := fmt.Sprintf("You have been assigned to %q on %s.", ev.Name, ev.Date)
	if _, err := h.Notifications.Create(ctx, vid, msg); err != nil {
		h.Log.Warn("failed to record assignment notification",
			zap.String("volunteer_id", volunteerID),
			zap.String("event_id", ev.ID.Hex()),
			zap.Error(err))
	}
}
