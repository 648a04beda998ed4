// internal/app/features/volunteers/delete.go
package volunteers

import (
	"context"
	"net/http"

	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete processes DELETE /api/volunteers/{id}.
// Event rosters keep any prior assignments; historical rosters are a
// record of who was assigned, not a live join.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid volunteer ID format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := volunteerstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete volunteer failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error deleting volunteer")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Volunteer not found")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Volunteer deleted"})
}
