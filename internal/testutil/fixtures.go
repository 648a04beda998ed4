package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateVolunteer creates a matchable volunteer with the given profile.
func (f *Fixtures) CreateVolunteer(ctx context.Context, fullName, email, zip string, skills, availability []string) models.Volunteer {
	f.t.Helper()

	if skills == nil {
		skills = []string{}
	}
	if availability == nil {
		availability = []string{}
	}

	now := time.Now().UTC()
	v := models.Volunteer{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		FullNameCI:   text.Fold(fullName),
		Email:        email,
		ZipCode:      zip,
		Skills:       skills,
		Availability: availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("volunteers").InsertOne(ctx, v); err != nil {
		f.t.Fatalf("failed to create test volunteer: %v", err)
	}
	return v
}

// CreateIncompleteVolunteer creates a volunteer document with no
// zip_code, skills, or availability fields at all, mirroring a profile
// that was registered but never filled in.
func (f *Fixtures) CreateIncompleteVolunteer(ctx context.Context, fullName, email string) models.Volunteer {
	f.t.Helper()

	now := time.Now().UTC()
	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":          id,
		"full_name":    fullName,
		"full_name_ci": text.Fold(fullName),
		"email":        email,
		"created_at":   now,
		"updated_at":   now,
	}

	if _, err := f.db.Collection("volunteers").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create incomplete test volunteer: %v", err)
	}
	return models.Volunteer{ID: id, FullName: fullName, Email: email, CreatedAt: now, UpdatedAt: now}
}

// CreateEvent creates an event with an empty roster.
func (f *Fixtures) CreateEvent(ctx context.Context, name, zip, date string, skills []string) models.Event {
	f.t.Helper()

	if skills == nil {
		skills = []string{}
	}

	now := time.Now().UTC()
	e := models.Event{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		ZipCode:    zip,
		Skills:     skills,
		Date:       date,
		Volunteers: []primitive.ObjectID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return e
}

// CreateEventWithNullRoster creates an event whose volunteers field is
// explicitly null, as legacy documents sometimes are.
func (f *Fixtures) CreateEventWithNullRoster(ctx context.Context, name, zip, date string, skills []string) models.Event {
	f.t.Helper()

	if skills == nil {
		skills = []string{}
	}

	now := time.Now().UTC()
	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":        id,
		"name":       name,
		"name_ci":    text.Fold(name),
		"zip_code":   zip,
		"skills":     skills,
		"date":       date,
		"volunteers": nil,
		"created_at": now,
		"updated_at": now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create test event with null roster: %v", err)
	}
	return models.Event{ID: id, Name: name, ZipCode: zip, Skills: skills, Date: date, CreatedAt: now, UpdatedAt: now}
}

// CreateNotification creates a notification record for the user.
func (f *Fixtures) CreateNotification(ctx context.Context, userID primitive.ObjectID, message string, read bool) models.Notification {
	f.t.Helper()

	n := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Message:   message,
		Read:      read,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("notifications").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("failed to create test notification: %v", err)
	}
	return n
}
