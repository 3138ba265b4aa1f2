package mongodb

import (
	"testing"

	"tourbook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapError_NoDocuments(t *testing.T) {
	assert.ErrorIs(t, mapError(mongo.ErrNoDocuments), repository.ErrNotFound)
	assert.NoError(t, mapError(nil))
}

func TestMapError_DuplicateKey(t *testing.T) {
	err := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{
			Code:    11000,
			Message: `E11000 duplicate key error collection: natours.users index: email_1 dup key: { email: "jonas@example.com" }`,
		}},
	}

	mapped := mapError(err)
	require.ErrorIs(t, mapped, repository.ErrDuplicateKey)

	var dup *repository.DuplicateKeyError
	require.ErrorAs(t, mapped, &dup)
	assert.Equal(t, "email", dup.Field)
	assert.Equal(t, "jonas@example.com", dup.Value)
}

func TestParseDuplicateKey(t *testing.T) {
	tests := []struct {
		name      string
		msg       string
		wantField string
		wantValue string
	}{
		{
			name:      "tour name",
			msg:       `E11000 duplicate key error collection: natours.tours index: name_1 dup key: { name: "The Forest Hiker" }`,
			wantField: "name",
			wantValue: "The Forest Hiker",
		},
		{
			name:      "compound review key",
			msg:       `E11000 duplicate key error collection: natours.reviews index: tour_1_user_1 dup key: { tour: ObjectId('5c88fa8cf4afda39709c2955'), user: ObjectId('5c8a1d5b0190b214360dc057') }`,
			wantField: "tour",
			wantValue: "ObjectId('5c88fa8cf4afda39709c2955')",
		},
		{
			name:      "unparseable",
			msg:       "E11000 duplicate key error",
			wantField: "unknown",
			wantValue: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dup := parseDuplicateKey(tt.msg)
			assert.Equal(t, tt.wantField, dup.Field)
			assert.Equal(t, tt.wantValue, dup.Value)
		})
	}
}
