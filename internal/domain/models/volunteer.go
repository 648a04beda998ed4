package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer is a volunteer profile.
//
// NOTE:
//   - Skills and Availability distinguish "absent" from "empty":
//     a field missing from the document decodes as a nil slice, while a
//     present-but-empty array decodes as a non-nil empty slice. The
//     matcher relies on that distinction for its completeness check.
//   - Availability holds calendar dates as YYYY-MM-DD strings; event
//     matching is exact string equality on those dates.
type Volunteer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`

	// No omitempty on the collections: a present-but-empty array must
	// survive a struct insert, and a nil slice marshals as null, which
	// still decodes back as nil.
	ZipCode      string   `bson:"zip_code,omitempty" json:"zip_code,omitempty"`
	Skills       []string `bson:"skills" json:"skills,omitempty"`
	Availability []string `bson:"availability" json:"availability,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MatchReady reports whether the profile carries everything the
// assignment matcher needs: a zip code plus skills and availability
// collections that exist on the document. Skills and Availability may
// be empty, but must be present.
func (v Volunteer) MatchReady() bool {
	return v.ZipCode != "" && v.Skills != nil && v.Availability != nil
}
