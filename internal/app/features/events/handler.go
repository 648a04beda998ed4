// internal/app/features/events/handler.go
package events

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for events.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs an events Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

var validate = validator.New()
