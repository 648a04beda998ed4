package matcher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/matcher"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Fixture ids mirror the seed data used by the end-to-end scenario.
const (
	volunteerHex = "67dcf07d20227aed7bc5ac48"
	eventHex     = "67dce403deb657df9900d5a7"
)

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

// fakeVolunteers serves a single volunteer record and counts lookups.
type fakeVolunteers struct {
	vol   models.Volunteer
	err   error
	calls int
}

func (f *fakeVolunteers) GetByID(_ context.Context, id primitive.ObjectID) (models.Volunteer, error) {
	f.calls++
	if f.err != nil {
		return models.Volunteer{}, f.err
	}
	if f.vol.ID != id {
		return models.Volunteer{}, mongo.ErrNoDocuments
	}
	return f.vol, nil
}

// fakeEvents serves a match candidate and a fallback event, and records
// append attempts.
type fakeEvents struct {
	match       *models.Event
	fallback    *models.Event
	appendCount int64 // ModifiedCount returned by AppendVolunteer
	appends     int
	appendedTo  primitive.ObjectID
	calls       int
}

func (f *fakeEvents) GetByID(_ context.Context, id primitive.ObjectID) (models.Event, error) {
	f.calls++
	if f.fallback != nil && f.fallback.ID == id {
		return *f.fallback, nil
	}
	if f.match != nil && f.match.ID == id {
		return *f.match, nil
	}
	return models.Event{}, mongo.ErrNoDocuments
}

func (f *fakeEvents) FindMatch(_ context.Context, zip string, skills, availability []string) (models.Event, error) {
	f.calls++
	if f.match == nil || f.match.ZipCode != zip {
		return models.Event{}, mongo.ErrNoDocuments
	}
	if !overlap(f.match.Skills, skills) || !containsStr(availability, f.match.Date) {
		return models.Event{}, mongo.ErrNoDocuments
	}
	return *f.match, nil
}

func (f *fakeEvents) AppendVolunteer(_ context.Context, eventID, _ primitive.ObjectID) (int64, error) {
	f.appends++
	f.appendedTo = eventID
	return f.appendCount, nil
}

func overlap(a, b []string) bool {
	for _, x := range a {
		if containsStr(b, x) {
			return true
		}
	}
	return false
}

func containsStr(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

func readyVolunteer(t *testing.T) models.Volunteer {
	return models.Volunteer{
		ID:           oid(t, volunteerHex),
		FullName:     "Test Volunteer",
		ZipCode:      "77494",
		Skills:       []string{"cooking", "teaching"},
		Availability: []string{"2024-06-01"},
	}
}

func matchingEvent(t *testing.T) models.Event {
	return models.Event{
		ID:         oid(t, eventHex),
		Name:       "Community Kitchen",
		ZipCode:    "77494",
		Skills:     []string{"cooking", "cleaning"},
		Date:       "2024-06-01",
		Volunteers: []primitive.ObjectID{},
	}
}

func fallbackEvent(t *testing.T) models.Event {
	return models.Event{
		ID:         primitive.NewObjectID(),
		Name:       "General Assistance",
		ZipCode:    "00000",
		Skills:     []string{},
		Date:       "2024-12-31",
		Volunteers: []primitive.ObjectID{},
	}
}

func TestAssign_DirectMatch(t *testing.T) {
	ev := matchingEvent(t)
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 1}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	res, err := m.Assign(context.Background(), volunteerHex)
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	assert.Equal(t, ev.ID, res.Event.ID)
	assert.Equal(t, ev.ID, events.appendedTo)

	// Roster contains the volunteer exactly once.
	count := 0
	for _, id := range res.Event.Volunteers {
		if id == oid(t, volunteerHex) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAssign_FallbackWhenNoZipMatch(t *testing.T) {
	ev := matchingEvent(t)
	ev.ZipCode = "10001" // no event shares the volunteer's zip
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 1}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	res, err := m.Assign(context.Background(), volunteerHex)
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Equal(t, fb.ID, res.Event.ID)
	assert.Equal(t, fb.ID, events.appendedTo, "only the fallback event is mutated")
	assert.Contains(t, res.Event.Volunteers, oid(t, volunteerHex))
}

func TestAssign_AlreadyAssigned(t *testing.T) {
	ev := matchingEvent(t)
	ev.Volunteers = []primitive.ObjectID{oid(t, volunteerHex)}
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 1}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	_, err := m.Assign(context.Background(), volunteerHex)
	assert.ErrorIs(t, err, matcher.ErrAlreadyAssigned)
	assert.Equal(t, 0, events.appends, "no write on the duplicate path")
}

func TestAssign_IncompleteProfile(t *testing.T) {
	vol := readyVolunteer(t)
	vol.Skills = nil // field absent from the document, not an empty array
	ev := matchingEvent(t)
	vols := &fakeVolunteers{vol: vol}
	events := &fakeEvents{match: &ev, appendCount: 1}
	m := matcher.New(vols, events, primitive.NewObjectID(), zap.NewNop())

	_, err := m.Assign(context.Background(), volunteerHex)
	assert.ErrorIs(t, err, matcher.ErrIncompleteVolunteer)
	assert.Equal(t, 0, events.calls, "no matching attempted for partial data")
	assert.Equal(t, 0, events.appends)
}

func TestAssign_EmptySkillsIsUsable(t *testing.T) {
	// An empty skills array is a complete (if unmatchable) profile:
	// the call falls through to the fallback event rather than failing
	// with incomplete data.
	vol := readyVolunteer(t)
	vol.Skills = []string{}
	ev := matchingEvent(t)
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: vol}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 1}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	res, err := m.Assign(context.Background(), volunteerHex)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
}

func TestAssign_InvalidID(t *testing.T) {
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{appendCount: 1}
	m := matcher.New(vols, events, primitive.NewObjectID(), zap.NewNop())

	for _, bad := range []string{"", "nope", "zzzzzzzzzzzzzzzzzzzzzzzz", "67dcf07d20227aed7bc5ac4"} {
		_, err := m.Assign(context.Background(), bad)
		assert.ErrorIs(t, err, matcher.ErrInvalidID, "input %q", bad)
	}
	assert.Equal(t, 0, vols.calls, "malformed ids fail before any store access")
	assert.Equal(t, 0, events.calls)
}

func TestAssign_VolunteerNotFound(t *testing.T) {
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{appendCount: 1}
	m := matcher.New(vols, events, primitive.NewObjectID(), zap.NewNop())

	_, err := m.Assign(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, matcher.ErrVolunteerNotFound)
}

func TestAssign_FallbackMissing(t *testing.T) {
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{appendCount: 1} // no match, no fallback document
	m := matcher.New(vols, events, primitive.NewObjectID(), zap.NewNop())

	_, err := m.Assign(context.Background(), volunteerHex)
	assert.ErrorIs(t, err, matcher.ErrFallbackEventNotFound)
	assert.Equal(t, 0, events.appends)
}

func TestAssign_NullRosterTreatedAsEmpty(t *testing.T) {
	ev := matchingEvent(t)
	ev.Volunteers = nil
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 1}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	res, err := m.Assign(context.Background(), volunteerHex)
	require.NoError(t, err)
	assert.Len(t, res.Event.Volunteers, 1)
}

func TestAssign_ReturnedEventReflectsWrite(t *testing.T) {
	ev := matchingEvent(t)
	ev.UpdatedAt = time.Now().Add(-time.Hour).UTC()
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 1}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	res, err := m.Assign(context.Background(), volunteerHex)
	require.NoError(t, err)

	// The append touched updated_at; the returned state must not carry
	// the stale pre-write timestamp.
	assert.True(t, res.Event.UpdatedAt.After(ev.UpdatedAt),
		"updated_at: got %v, want after %v", res.Event.UpdatedAt, ev.UpdatedAt)
}

func TestAssign_ZeroModifiedSurfacesFailure(t *testing.T) {
	ev := matchingEvent(t)
	fb := fallbackEvent(t)
	vols := &fakeVolunteers{vol: readyVolunteer(t)}
	events := &fakeEvents{match: &ev, fallback: &fb, appendCount: 0}
	m := matcher.New(vols, events, fb.ID, zap.NewNop())

	_, err := m.Assign(context.Background(), volunteerHex)
	assert.ErrorIs(t, err, matcher.ErrAssignmentFailed)
}

func TestAssign_StoreFailureIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	vols := &fakeVolunteers{err: boom}
	events := &fakeEvents{appendCount: 1}
	m := matcher.New(vols, events, primitive.NewObjectID(), zap.NewNop())

	_, err := m.Assign(context.Background(), volunteerHex)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	// Not any of the caller-error kinds.
	assert.NotErrorIs(t, err, matcher.ErrVolunteerNotFound)
	assert.NotErrorIs(t, err, matcher.ErrInvalidID)
}
