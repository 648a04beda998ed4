package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a volunteer event with a roster of assigned volunteers.
//
// NOTE:
//   - Volunteers is an ordered append-only roster. Legacy documents may
//     carry a null or missing array; the event store normalizes those to
//     an empty slice so callers never see nil.
//   - Date is a YYYY-MM-DD string; matching compares it for exact
//     equality against a volunteer's availability dates.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Urgency     string             `bson:"urgency,omitempty" json:"urgency,omitempty"` // low | medium | high

	ZipCode string   `bson:"zip_code" json:"zip_code"`
	Skills  []string `bson:"skills" json:"skills"`
	Date    string   `bson:"date" json:"date"`

	Volunteers []primitive.ObjectID `bson:"volunteers,omitempty" json:"volunteers"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasVolunteer reports whether id already appears on the roster.
// A nil roster counts as empty.
func (e Event) HasVolunteer(id primitive.ObjectID) bool {
	for _, v := range e.Volunteers {
		if v == id {
			return true
		}
	}
	return false
}
