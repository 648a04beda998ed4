// internal/app/features/assignments/routes.go
package assignments

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the assignment endpoints
// (typically mounted at "/api/volunteerAssignments" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/assignVolunteer/{volunteerId}", h.HandleAssign)
	return r
}
