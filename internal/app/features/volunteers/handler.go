// internal/app/features/volunteers/handler.go
package volunteers

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for volunteer profiles.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a volunteers Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

// validate checks request payload struct tags. Shared across the
// feature's handlers; validator.Validate is safe for concurrent use.
var validate = validator.New()
