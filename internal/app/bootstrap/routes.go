// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	assignmentsfeature "github.com/dalemusser/volunteerhub/internal/app/features/assignments"
	eventsfeature "github.com/dalemusser/volunteerhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/volunteerhub/internal/app/features/health"
	notificationsfeature "github.com/dalemusser/volunteerhub/internal/app/features/notifications"
	volunteersfeature "github.com/dalemusser/volunteerhub/internal/app/features/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/matcher"
	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// VolunteerHub mounts the health check plus the JSON API: volunteer
// profiles, events, notifications, and the assignment endpoint that
// runs the matcher.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// ValidateConfig already checked the hex format.
	fallbackID, err := primitive.ObjectIDFromHex(appCfg.FallbackEventID)
	if err != nil {
		logger.Error("bad fallback event id", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Request logging with per-request ids.
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		// Volunteer profiles
		volunteersHandler := volunteersfeature.NewHandler(db, logger)
		api.Mount("/volunteers", volunteersfeature.Routes(volunteersHandler))

		// Events
		eventsHandler := eventsfeature.NewHandler(db, logger)
		api.Mount("/events", eventsfeature.Routes(eventsHandler))

		// Notifications
		notificationsHandler := notificationsfeature.NewHandler(db, logger)
		api.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

		// Volunteer-to-event assignment
		m := matcher.New(volunteerstore.New(db), eventstore.New(db), fallbackID, logger)
		assignHandler := assignmentsfeature.NewHandler(m, notificationstore.New(db), logger)
		api.Mount("/volunteerAssignments", assignmentsfeature.Routes(assignHandler))
	})

	return r, nil
}
