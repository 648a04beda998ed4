// internal/app/matcher/matcher.go

// Package matcher assigns volunteers to events. Given a volunteer id it
// loads the profile, finds the best-fit upcoming event (same zip code,
// at least one shared skill, event date inside the volunteer's
// availability), falls back to a configured default event when nothing
// matches, and appends the volunteer to the chosen event's roster with
// a duplicate-safe single-document update.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// VolunteerSource is the read-only volunteer lookup the matcher
// consumes. Implemented by volunteerstore.Store.
type VolunteerSource interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Volunteer, error)
}

// EventSource is the event lookup/update surface the matcher consumes.
// Implemented by eventstore.Store. FindMatch and GetByID must return
// mongo.ErrNoDocuments when nothing qualifies.
type EventSource interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error)
	FindMatch(ctx context.Context, zip string, skills, availability []string) (models.Event, error)
	AppendVolunteer(ctx context.Context, eventID, volunteerID primitive.ObjectID) (int64, error)
}

// Result is a successful assignment. Fallback distinguishes "matched
// directly" from "assigned to the fallback event"; Event carries the
// post-append roster.
type Result struct {
	Fallback bool
	Event    models.Event
}

// Matcher performs one assignment per call. It holds no per-request
// state and is safe for concurrent use.
type Matcher struct {
	volunteers VolunteerSource
	events     EventSource
	fallbackID primitive.ObjectID
	log        *zap.Logger
}

func New(volunteers VolunteerSource, events EventSource, fallbackID primitive.ObjectID, logger *zap.Logger) *Matcher {
	return &Matcher{
		volunteers: volunteers,
		events:     events,
		fallbackID: fallbackID,
		log:        logger,
	}
}

// Assign matches the volunteer to an event and records the assignment.
//
// Steps run in strict sequence: parse id, load volunteer, completeness
// check, match (or fallback), duplicate guard, atomic roster append.
// Exactly one event document is mutated on success; failure paths
// never write.
func (m *Matcher) Assign(ctx context.Context, volunteerID string) (Result, error) {
	vid, err := primitive.ObjectIDFromHex(volunteerID)
	if err != nil {
		return Result{}, ErrInvalidID
	}

	vol, err := m.volunteers.GetByID(ctx, vid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Result{}, ErrVolunteerNotFound
		}
		return Result{}, fmt.Errorf("load volunteer: %w", err)
	}

	// Partial profiles cannot be matched reliably; reject before any
	// matching attempt.
	if !vol.MatchReady() {
		return Result{}, ErrIncompleteVolunteer
	}

	ev, fallback, err := m.pickEvent(ctx, vol)
	if err != nil {
		return Result{}, err
	}

	if ev.HasVolunteer(vid) {
		return Result{}, ErrAlreadyAssigned
	}

	modified, err := m.events.AppendVolunteer(ctx, ev.ID, vid)
	if err != nil {
		return Result{}, fmt.Errorf("append volunteer to event: %w", err)
	}
	if modified == 0 {
		// Event deleted, roster shape changed, or a concurrent call
		// appended the volunteer between our guard and the write.
		return Result{}, ErrAssignmentFailed
	}

	// Mirror the write locally so the returned state matches the
	// document: the update pushed the volunteer and touched updated_at.
	ev.Volunteers = append(ev.Volunteers, vid)
	ev.UpdatedAt = time.Now().UTC()
	m.log.Info("volunteer assigned",
		zap.String("volunteer_id", vid.Hex()),
		zap.String("event_id", ev.ID.Hex()),
		zap.Bool("fallback", fallback))

	return Result{Fallback: fallback, Event: ev}, nil
}

// pickEvent finds the first qualifying event for the profile, or loads
// the configured fallback event when nothing qualifies.
func (m *Matcher) pickEvent(ctx context.Context, vol models.Volunteer) (models.Event, bool, error) {
	ev, err := m.events.FindMatch(ctx, vol.ZipCode, vol.Skills, vol.Availability)
	if err == nil {
		return ev, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, false, fmt.Errorf("find matching event: %w", err)
	}

	ev, err = m.events.GetByID(ctx, m.fallbackID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Event{}, false, ErrFallbackEventNotFound
		}
		return models.Event{}, false, fmt.Errorf("load fallback event: %w", err)
	}
	return ev, true, nil
}
