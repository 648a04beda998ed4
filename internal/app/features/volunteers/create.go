// internal/app/features/volunteers/create.go
package volunteers

import (
	"context"
	"errors"
	"net/http"

	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.uber.org/zap"
)

// createVolunteerInput defines validation rules for registering a
// volunteer. Profile fields are optional at creation; the assignment
// matcher rejects profiles that never filled them in.
type createVolunteerInput struct {
	FullName     string   `json:"full_name" validate:"required,max=200"`
	Email        string   `json:"email" validate:"required,email,max=254"`
	ZipCode      string   `json:"zip_code" validate:"omitempty,len=5,numeric"`
	Skills       []string `json:"skills" validate:"omitempty,dive,min=1,max=100"`
	Availability []string `json:"availability" validate:"omitempty,dive,datetime=2006-01-02"`
}

// HandleCreate processes POST /api/volunteers.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createVolunteerInput
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
	created, err := store.Create(ctx, models.Volunteer{
		FullName:     in.FullName,
		Email:        in.Email,
		ZipCode:      in.ZipCode,
		Skills:       in.Skills,
		Availability: in.Availability,
	})
	if err != nil {
		if errors.Is(err, volunteerstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusConflict, "A volunteer with this email already exists")
			return
		}
		h.Log.Error("create volunteer failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error creating volunteer")
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
