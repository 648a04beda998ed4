// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the event endpoints
// (typically mounted at "/api/events" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
