package entity

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a tour. A user may review each tour once.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Review    string             `bson:"review" json:"review,omitempty" validate:"required"`
	Rating    int                `bson:"rating" json:"rating,omitempty" validate:"required,min=1,max=5"`
	Tour      primitive.ObjectID `bson:"tour" json:"tour,omitzero"`
	User      primitive.ObjectID `bson:"user" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt,omitzero"`

	// Author is populated on reads; never stored.
	Author *User `bson:"-" json:"-"`
}

// GetID returns the document identifier.
func (r *Review) GetID() primitive.ObjectID { return r.ID }

// SetID assigns the document identifier.
func (r *Review) SetID(id primitive.ObjectID) { r.ID = id }

// OwnedBy reports whether the review was written by userID.
func (r *Review) OwnedBy(userID primitive.ObjectID) bool {
	return r.User == userID
}

// MarshalJSON renders the author in place of the bare user id when populated.
func (r Review) MarshalJSON() ([]byte, error) {
	type reviewAlias Review
	out := struct {
		reviewAlias
		User any `json:"user,omitempty"`
	}{reviewAlias: reviewAlias(r)}
	switch {
	case r.Author != nil:
		out.User = r.Author
	case !r.User.IsZero():
		out.User = r.User
	}

	return json.Marshal(out)
}
