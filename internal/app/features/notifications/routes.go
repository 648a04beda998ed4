// internal/app/features/notifications/routes.go
package notifications

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the notification endpoints
// (typically mounted at "/api/notifications" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{userId}", h.ServeListForUser)
	r.Post("/readAll/{userId}", h.HandleMarkAllRead)
	r.Post("/{id}/read", h.HandleMarkRead)

	return r
}
