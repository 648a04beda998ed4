// internal/app/features/volunteers/edit.go
package volunteers

import (
	"context"
	"errors"
	"net/http"

	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// updateVolunteerInput defines validation rules for updating a profile.
// Skills and availability may be empty lists; writing them (even empty)
// is what marks the profile complete for matching.
type updateVolunteerInput struct {
	FullName     string   `json:"full_name" validate:"omitempty,max=200"`
	ZipCode      string   `json:"zip_code" validate:"required,len=5,numeric"`
	Skills       []string `json:"skills" validate:"dive,min=1,max=100"`
	Availability []string `json:"availability" validate:"dive,datetime=2006-01-02"`
}

// HandleUpdate processes PUT /api/volunteers/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid volunteer ID format")
		return
	}

	var in updateVolunteerInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid volunteer data: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := volunteerstore.New(h.DB)
	if err := store.UpdateProfile(ctx, id, in.FullName, in.ZipCode, in.Skills, in.Availability); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
			return
		}
		h.Log.Error("update volunteer failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating volunteer")
		return
	}

	updated, err := store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("reload volunteer failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error updating volunteer")
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}
