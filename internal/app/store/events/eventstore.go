// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// normalize makes the roster explicit: legacy documents can carry a
// null or missing volunteers array, and callers should never have to
// null-check it.
func normalize(e models.Event) models.Event {
	if e.Volunteers == nil {
		e.Volunteers = []primitive.ObjectID{}
	}
	return e
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var e models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return models.Event{}, err
	}
	return normalize(e), nil
}

// FindMatch returns the first event located in zip whose requested
// skills overlap the given skills and whose date falls on one of the
// given availability dates. Candidates are ordered by date ascending
// with _id as the tiebreak, so the soonest qualifying event wins
// deterministically. Returns mongo.ErrNoDocuments when nothing
// qualifies.
func (s *Store) FindMatch(ctx context.Context, zip string, skills, availability []string) (models.Event, error) {
	filter := bson.M{
		"zip_code": zip,
		"skills":   bson.M{"$in": skills},
		"date":     bson.M{"$in": availability},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	var e models.Event
	if err := s.c.FindOne(ctx, filter, opts).Decode(&e); err != nil {
		return models.Event{}, err
	}
	return normalize(e), nil
}

// AppendVolunteer pushes volunteerID onto the event's roster with a
// single-document update. The filter excludes documents that already
// list the volunteer, so a concurrent duplicate append loses the race
// and reports zero modified documents instead of double-assigning.
func (s *Store) AppendVolunteer(ctx context.Context, eventID, volunteerID primitive.ObjectID) (int64, error) {
	// $push requires an array. Legacy documents can carry an explicit
	// null roster, which $push rejects instead of creating, so coerce
	// a null (or missing) field to an empty array first.
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": eventID, "volunteers": nil},
		bson.M{"$set": bson.M{"volunteers": []primitive.ObjectID{}}})
	if err != nil {
		return 0, err
	}

	filter := bson.M{
		"_id":        eventID,
		"volunteers": bson.M{"$ne": volunteerID},
	}
	update := bson.M{
		"$push": bson.M{"volunteers": volunteerID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.NameCI = text.Fold(e.Name)
	if e.Skills == nil {
		e.Skills = []string{}
	}
	if e.Volunteers == nil {
		e.Volunteers = []primitive.ObjectID{}
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// UpdateInfo replaces the event's descriptive and matching fields.
// The roster is never touched here; it only changes through
// AppendVolunteer.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, desc, urgency, zip, date string, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	set := bson.M{
		"description": desc,
		"urgency":     urgency,
		"zip_code":    zip,
		"date":        date,
		"skills":      skills,
		"updated_at":  time.Now().UTC(),
	}
	if name != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
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

// Delete removes an event by ID. Returns the number of documents deleted (0 or 1).
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
