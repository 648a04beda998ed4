// internal/app/store/volunteers/volunteerstore.go
package volunteerstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("a volunteer with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteers")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Volunteer, error) {
	var v models.Volunteer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return models.Volunteer{}, err
	}
	return v, nil
}

func (s *Store) Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	now := time.Now().UTC()
	v.ID = primitive.NewObjectID()
	v.FullNameCI = text.Fold(v.FullName)
	v.CreatedAt = now
	v.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, v)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Volunteer{}, ErrDuplicateEmail
		}
		return models.Volunteer{}, err
	}
	return v, nil
}

// UpdateProfile replaces the mutable profile fields. Skills and
// availability are written even when empty so the document keeps both
// collections present, which is what makes the profile matchable.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName, zip string, skills, availability []string) error {
	if skills == nil {
		skills = []string{}
	}
	if availability == nil {
		availability = []string{}
	}
	set := bson.M{
		"zip_code":     zip,
		"skills":       skills,
		"availability": availability,
		"updated_at":   time.Now().UTC(),
	}
	if fullName != "" {
		set["full_name"] = fullName
		set["full_name_ci"] = text.Fold(fullName)
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a volunteer by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
