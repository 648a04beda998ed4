// internal/app/features/volunteers/routes.go
package volunteers

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the volunteer profile endpoints
// (typically mounted at "/api/volunteers" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
