package assignments_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/features/assignments"
	"github.com/dalemusser/volunteerhub/internal/app/matcher"
	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Fixture ids from the original seed data.
const (
	volunteerHex = "67dcf07d20227aed7bc5ac48"
	eventHex     = "67dce403deb657df9900d5a7"
)

type env struct {
	db       *mongo.Database
	fixtures *testutil.Fixtures
	events   *eventstore.Store
	handler  *assignments.Handler
	fallback models.Event
}

func setup(t *testing.T) (*env, context.Context) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	t.Cleanup(cancel)

	fixtures := testutil.NewFixtures(t, db)
	fallback := fixtures.CreateEvent(ctx, "General Assistance", "00000", "2024-12-31", []string{})

	events := eventstore.New(db)
	m := matcher.New(volunteerstore.New(db), events, fallback.ID, zap.NewNop())
	h := assignments.NewHandler(m, notificationstore.New(db), zap.NewNop())

	return &env{
		db:       db,
		fixtures: fixtures,
		events:   events,
		handler:  h,
		fallback: fallback,
	}, ctx
}

// seedVolunteer inserts a volunteer with a fixed id so responses can be
// checked against the known hex.
func (e *env) seedVolunteer(t *testing.T, ctx context.Context, idHex, zip string, skills, availability []string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		t.Fatalf("bad volunteer hex: %v", err)
	}
	now := time.Now().UTC()
	doc := bson.M{
		"_id":          id,
		"full_name":    "Jordan Fixture",
		"full_name_ci": "jordan fixture",
		"email":        "jordan@example.com",
		"zip_code":     zip,
		"skills":       skills,
		"availability": availability,
		"created_at":   now,
		"updated_at":   now,
	}
	if _, err := e.db.Collection("volunteers").InsertOne(ctx, doc); err != nil {
		t.Fatalf("seed volunteer: %v", err)
	}
	return id
}

func (e *env) seedEvent(t *testing.T, ctx context.Context, idHex, zip, date string, skills []string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		t.Fatalf("bad event hex: %v", err)
	}
	now := time.Now().UTC()
	doc := bson.M{
		"_id":        id,
		"name":       "Community Kitchen",
		"name_ci":    "community kitchen",
		"zip_code":   zip,
		"skills":     skills,
		"date":       date,
		"volunteers": []primitive.ObjectID{},
		"created_at": now,
		"updated_at": now,
	}
	if _, err := e.db.Collection("events").InsertOne(ctx, doc); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return id
}

func postAssign(h *assignments.Handler, volunteerID string) *httptest.ResponseRecorder {
	r := assignments.Routes(h)
	req := httptest.NewRequest("POST", "/assignVolunteer/"+volunteerID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type assignBody struct {
	Message string       `json:"message"`
	Event   models.Event `json:"event"`
	Error   string       `json:"error"`
}

func TestHandleAssign_DirectMatch(t *testing.T) {
	e, ctx := setup(t)
	vid := e.seedVolunteer(t, ctx, volunteerHex, "77494", []string{"cooking", "teaching"}, []string{"2024-06-01"})
	eid := e.seedEvent(t, ctx, eventHex, "77494", "2024-06-01", []string{"cooking", "cleaning"})

	rec := postAssign(e.handler, volunteerHex)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)

	if !strings.Contains(body.Message, "successfully") {
		t.Errorf("message: got %q, want it to contain %q", body.Message, "successfully")
	}
	if body.Event.ID != eid {
		t.Errorf("event id: got %v, want %v", body.Event.ID, eid)
	}

	count := 0
	for _, id := range body.Event.Volunteers {
		if id == vid {
			count++
		}
	}
	if count != 1 {
		t.Errorf("roster occurrences of volunteer: got %d, want 1", count)
	}

	// A notification was recorded for the volunteer.
	n, err := notificationstore.New(e.db).CountUnread(ctx, vid)
	if err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if n != 1 {
		t.Errorf("unread notifications: got %d, want 1", n)
	}
}

func TestHandleAssign_FallbackWhenNoZipMatches(t *testing.T) {
	e, ctx := setup(t)
	vid := e.seedVolunteer(t, ctx, volunteerHex, "77494", []string{"cooking"}, []string{"2024-06-01"})
	other := e.seedEvent(t, ctx, eventHex, "10001", "2024-06-01", []string{"cooking"})

	rec := postAssign(e.handler, volunteerHex)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)

	if !strings.Contains(body.Message, "fallback event") {
		t.Errorf("message: got %q, want fallback wording", body.Message)
	}
	if body.Event.ID != e.fallback.ID {
		t.Errorf("event id: got %v, want fallback %v", body.Event.ID, e.fallback.ID)
	}

	// Only the fallback event was mutated.
	unmatched, err := e.events.GetByID(ctx, other)
	if err != nil {
		t.Fatalf("reload unmatched event: %v", err)
	}
	if len(unmatched.Volunteers) != 0 {
		t.Errorf("unmatched event roster: got %d entries, want 0", len(unmatched.Volunteers))
	}
	fb, err := e.events.GetByID(ctx, e.fallback.ID)
	if err != nil {
		t.Fatalf("reload fallback event: %v", err)
	}
	if !fb.HasVolunteer(vid) {
		t.Error("fallback event roster missing the volunteer")
	}
}

func TestHandleAssign_InvalidID(t *testing.T) {
	e, _ := setup(t)

	rec := postAssign(e.handler, "not-a-hex-id")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Error != "Invalid volunteer ID format" {
		t.Errorf("error: got %q", body.Error)
	}
}

func TestHandleAssign_IncompleteVolunteer(t *testing.T) {
	e, ctx := setup(t)
	vol := e.fixtures.CreateIncompleteVolunteer(ctx, "Half Done", "half@example.com")
	eid := e.seedEvent(t, ctx, eventHex, "77494", "2024-06-01", []string{"cooking"})

	rec := postAssign(e.handler, vol.ID.Hex())

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Error != "Volunteer data is incomplete" {
		t.Errorf("error: got %q", body.Error)
	}

	// No write happened anywhere.
	ev, err := e.events.GetByID(ctx, eid)
	if err != nil {
		t.Fatalf("reload event: %v", err)
	}
	if len(ev.Volunteers) != 0 {
		t.Errorf("event roster: got %d entries, want 0", len(ev.Volunteers))
	}
}

func TestHandleAssign_AlreadyAssigned(t *testing.T) {
	e, ctx := setup(t)
	e.seedVolunteer(t, ctx, volunteerHex, "77494", []string{"cooking"}, []string{"2024-06-01"})
	eid := e.seedEvent(t, ctx, eventHex, "77494", "2024-06-01", []string{"cooking"})

	first := postAssign(e.handler, volunteerHex)
	if first.Code != http.StatusOK {
		t.Fatalf("first assign: got %d (body %s)", first.Code, first.Body.String())
	}

	second := postAssign(e.handler, volunteerHex)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("second assign: got %d, want %d", second.Code, http.StatusBadRequest)
	}
	var body assignBody
	testutil.DecodeJSON(t, second, &body)
	if body.Error != "Volunteer already assigned to this event" {
		t.Errorf("error: got %q", body.Error)
	}

	// Roster length unchanged after the duplicate attempt.
	ev, err := e.events.GetByID(ctx, eid)
	if err != nil {
		t.Fatalf("reload event: %v", err)
	}
	if len(ev.Volunteers) != 1 {
		t.Errorf("roster length: got %d, want 1", len(ev.Volunteers))
	}
}

func TestHandleAssign_VolunteerNotFound(t *testing.T) {
	e, _ := setup(t)

	rec := postAssign(e.handler, primitive.NewObjectID().Hex())

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Error != "Volunteer not found" {
		t.Errorf("error: got %q", body.Error)
	}
}

func TestHandleAssign_FallbackMissing(t *testing.T) {
	e, ctx := setup(t)
	e.seedVolunteer(t, ctx, volunteerHex, "77494", []string{"cooking"}, []string{"2024-06-01"})

	// Point the matcher at a fallback id that doesn't exist.
	m := matcher.New(volunteerstore.New(e.db), e.events, primitive.NewObjectID(), zap.NewNop())
	h := assignments.NewHandler(m, notificationstore.New(e.db), zap.NewNop())

	rec := postAssign(h, volunteerHex)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Error != "Fallback event not found" {
		t.Errorf("error: got %q", body.Error)
	}
}

func TestHandleAssign_EmptyListsProfileGoesToFallback(t *testing.T) {
	e, ctx := setup(t)

	// A profile stored through the create path with present-but-empty
	// skills and availability is complete: it matches nothing, so the
	// assignment lands on the fallback event instead of failing as
	// incomplete data.
	vol, err := volunteerstore.New(e.db).Create(ctx, models.Volunteer{
		FullName:     "Empty Lists",
		Email:        "empty@example.com",
		ZipCode:      "77494",
		Skills:       []string{},
		Availability: []string{},
	})
	if err != nil {
		t.Fatalf("create volunteer: %v", err)
	}
	e.seedEvent(t, ctx, eventHex, "77494", "2024-06-01", []string{"cooking"})

	rec := postAssign(e.handler, vol.ID.Hex())

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)
	if body.Event.ID != e.fallback.ID {
		t.Errorf("event id: got %v, want fallback %v", body.Event.ID, e.fallback.ID)
	}
}

func TestHandleAssign_NullRosterTreatedAsEmpty(t *testing.T) {
	e, ctx := setup(t)
	vid := e.seedVolunteer(t, ctx, volunteerHex, "77494", []string{"cooking"}, []string{"2024-06-01"})
	e.fixtures.CreateEventWithNullRoster(ctx, "Null Roster Drive", "77494", "2024-06-01", []string{"cooking"})

	rec := postAssign(e.handler, volunteerHex)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var body assignBody
	testutil.DecodeJSON(t, rec, &body)
	if len(body.Event.Volunteers) != 1 || body.Event.Volunteers[0] != vid {
		t.Errorf("roster: got %v, want exactly [%v]", body.Event.Volunteers, vid)
	}
}
