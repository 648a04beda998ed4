// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for VolunteerHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, fallback_event_id, etc.
//   - Environment variables: VOLUNTEERHUB_MONGO_URI, VOLUNTEERHUB_FALLBACK_EVENT_ID, etc.
//   - Command-line flags: --mongo_uri, --fallback_event_id, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "volunteer_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Matching configuration
	{Name: "fallback_event_id", Default: "", Desc: "Hex ObjectID of the catch-all event used when no event matches"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, VOLUNTEERHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "VOLUNTEERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		FallbackEventID: appValues.String("fallback_event_id"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// VolunteerHub validates the MongoDB URI format and the fallback event
// id to catch configuration errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.FallbackEventID == "" {
		return fmt.Errorf("fallback_event_id must be set (hex ObjectID of the catch-all event)")
	}
	if _, err := primitive.ObjectIDFromHex(appCfg.FallbackEventID); err != nil {
		logger.Error("invalid fallback event id", zap.String("fallback_event_id", appCfg.FallbackEventID), zap.Error(err))
		return fmt.Errorf("invalid fallback_event_id %q: %w", appCfg.FallbackEventID, err)
	}

	return nil
}
