// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// VolunteerHub verifies that the configured fallback event exists so a
// misconfigured deployment is caught at boot instead of on the first
// unmatched assignment. A missing event is logged as a warning rather
// than failing startup: operators may seed the event after boot.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	fallbackID, err := primitive.ObjectIDFromHex(appCfg.FallbackEventID)
	if err != nil {
		return err
	}

	if _, err := eventstore.New(deps.MongoDatabase).GetByID(ctx, fallbackID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Warn("fallback event not found; assignments will fail until it is created",
				zap.String("fallback_event_id", appCfg.FallbackEventID))
			return nil
		}
		return err
	}

	logger.Info("fallback event verified",
		zap.String("fallback_event_id", appCfg.FallbackEventID))
	return nil
}
