package mongodb

import (
	"testing"
	"time"

	"tourbook/internal/domain/entity"
	"tourbook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScopedPipeline_PrependsMatch(t *testing.T) {
	p := scopedPipeline(secretTourScope, bson.D{{Key: "$limit", Value: 1}})

	require.Len(t, p, 2)
	assert.Equal(t, bson.D{{Key: "$match", Value: secretTourScope}}, p[0])

	p = scopedPipeline(nil, bson.D{{Key: "$limit", Value: 1}})
	assert.Len(t, p, 1)
}

func TestTourCollection_ScopeHidesSecretTours(t *testing.T) {
	tours := newCollection[entity.Tour](nil, secretTourScope)
	id := primitive.NewObjectID()

	assert.Equal(t, secretTourScope, tours.scoped(nil))
	assert.Equal(t, bson.M{"$and": bson.A{secretTourScope, bson.M{"_id": id}}}, tours.scoped(bson.M{"_id": id}))
}

func TestTourStatsPipeline_HidesSecretTours(t *testing.T) {
	p := tourStatsPipeline(4.5)

	require.Len(t, p, 4)
	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, secretTourScope, p[0][0].Value)
	assert.Equal(t, bson.M{"ratingsAverage": bson.M{"$gte": 4.5}}, p[1][0].Value)
	assert.Equal(t, "$group", p[2][0].Key)
}

func TestMonthlyPlanPipeline_YearBounds(t *testing.T) {
	p := monthlyPlanPipeline(2021)

	match := p[2][0].Value.(bson.M)["startDates"].(bson.M)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), match["$gte"])
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), match["$lt"])
	assert.Equal(t, bson.D{{Key: "$limit", Value: 12}}, p[len(p)-1])
}

func TestRatingSummaryPipeline(t *testing.T) {
	id := primitive.NewObjectID()
	p := ratingSummaryPipeline(id)

	require.Len(t, p, 2)
	assert.Equal(t, bson.M{"tour": id}, p[0][0].Value)
}

func TestWithinRadiusFilter(t *testing.T) {
	f := withinRadiusFilter(-118.11, 34.11, 0.05)

	assert.Equal(t, bson.M{"startLocation": bson.M{
		"$geoWithin": bson.M{"$centerSphere": bson.A{bson.A{-118.11, 34.11}, 0.05}},
	}}, f)
}

func TestOneTimeTokenFilter(t *testing.T) {
	now := time.Now()

	assert.Equal(t, bson.M{
		"passwordResetToken":   "digest",
		"passwordResetExpires": bson.M{"$gt": now},
	}, oneTimeTokenFilter(repository.PasswordResetToken, "digest", now))

	assert.Equal(t, bson.M{
		"emailVerificationToken":   "digest",
		"emailVerificationExpires": bson.M{"$gt": now},
	}, oneTimeTokenFilter(repository.EmailVerificationToken, "digest", now))
}

func TestCollection_Scoped(t *testing.T) {
	c := &collection[struct{}]{scope: activeUserScope}

	assert.Equal(t, activeUserScope, c.scoped(nil))
	assert.Equal(t, bson.M{"$and": bson.A{activeUserScope, bson.M{"email": "a@b.c"}}}, c.scoped(bson.M{"email": "a@b.c"}))

	unscoped := &collection[struct{}]{}
	assert.Equal(t, bson.M{}, unscoped.scoped(nil))
}
