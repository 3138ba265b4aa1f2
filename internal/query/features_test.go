package query

import (
	"math"
	"net/http"
	"net/url"
	"testing"
	"time"

	domainerrors "tourbook/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var tourSchema = &Schema{
	Fields: map[string]Kind{
		"name":           String,
		"difficulty":     String,
		"price":          Number,
		"duration":       Number,
		"ratingsAverage": Number,
		"createdAt":      Date,
		"guides":         ObjectID,
		"summary":        Opaque,
	},
}

var userSchema = &Schema{
	Fields: map[string]Kind{
		"name":  String,
		"email": String,
		"roles": String,
	},
	Hidden: []string{"password", "active"},
}

func mustParse(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)

	return v
}

func build(t *testing.T, schema *Schema, raw string) *Query {
	t.Helper()
	q, err := New(schema, mustParse(t, raw)).Filter().Sort().LimitFields().Paginate().Build()
	require.NoError(t, err)

	return q
}

func requireValidationError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	if message != "" {
		assert.Equal(t, message, appErr.Message())
	}
}

func TestFeatures_ToursScenario(t *testing.T) {
	q := build(t, tourSchema, "difficulty=easy&sort=-price&limit=2&page=1")

	assert.Equal(t, bson.M{"difficulty": "easy"}, q.Filter)
	assert.Equal(t, bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: 1}}, q.Sort)
	assert.Equal(t, int64(0), q.Skip)
	assert.Equal(t, int64(2), q.Limit)
	assert.Nil(t, q.Projection)
}

func TestFeatures_FilterOperators(t *testing.T) {
	q := build(t, tourSchema, "price[gte]=100&price[lt]=500&duration[lte]=7")

	assert.Equal(t, bson.M{
		"price":    bson.M{"$gte": 100.0, "$lt": 500.0},
		"duration": bson.M{"$lte": 7.0},
	}, q.Filter)
}

func TestFeatures_RepeatedValuesBecomeIn(t *testing.T) {
	q := build(t, tourSchema, "difficulty=easy&difficulty=medium")

	assert.Equal(t, bson.M{"difficulty": bson.M{"$in": bson.A{"easy", "medium"}}}, q.Filter)
}

func TestFeatures_EqualityCombinedWithOperator(t *testing.T) {
	q := build(t, tourSchema, "price=397&price[gt]=100")

	assert.Equal(t, bson.M{"price": bson.M{"$eq": 397.0, "$gt": 100.0}}, q.Filter)
}

func TestFeatures_CastsByKind(t *testing.T) {
	id := primitive.NewObjectID()
	q := build(t, tourSchema, "guides="+id.Hex()+"&createdAt[gte]=2024-01-01")

	assert.Equal(t, id, q.Filter["guides"])
	assert.Equal(t, bson.M{"$gte": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, q.Filter["createdAt"])
}

func TestFeatures_RejectsUnknownInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{name: "unknown field", raw: "secretTour=true", message: "Invalid filter field: secretTour."},
		{name: "opaque field", raw: "summary=x", message: "Invalid filter field: summary."},
		{name: "unknown operator", raw: "price[ne]=5", message: "Invalid filter operator: ne."},
		{name: "operator injection", raw: "price[$where]=1", message: "Invalid filter operator: $where."},
		{name: "cast failure", raw: "price=abc", message: "Invalid price: abc."},
		{name: "bad object id", raw: "guides=xyz", message: "Invalid guides: xyz."},
		{name: "malformed key", raw: "price[gte=1", message: ""},
		{name: "unknown sort field", raw: "sort=secret", message: "Invalid sort field: secret."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tourSchema, mustParse(t, tt.raw)).Filter().Sort().LimitFields().Paginate().Build()
			requireValidationError(t, err, tt.message)
		})
	}
}

func TestFeatures_SortDefaultAndTiebreak(t *testing.T) {
	q := build(t, tourSchema, "")
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}, q.Sort)

	q = build(t, tourSchema, "sort=-ratingsAverage,price")
	assert.Equal(t, bson.D{
		{Key: "ratingsAverage", Value: -1},
		{Key: "price", Value: 1},
		{Key: "_id", Value: 1},
	}, q.Sort)

	q = build(t, &Schema{Fields: tourSchema.Fields, DefaultSort: "name"}, "")
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}, q.Sort)
}

func TestFeatures_LimitFields(t *testing.T) {
	q := build(t, tourSchema, "fields=name,price,summary")
	assert.Equal(t, bson.M{"name": 1, "price": 1, "summary": 1}, q.Projection)

	q = build(t, tourSchema, "fields=-summary")
	assert.Equal(t, bson.M{"summary": 0}, q.Projection)

	_, err := New(tourSchema, mustParse(t, "fields=name,-price")).LimitFields().Build()
	requireValidationError(t, err, "Cannot mix field inclusion and exclusion.")
}

func TestFeatures_HiddenFieldsNeverProjected(t *testing.T) {
	q := build(t, userSchema, "")
	assert.Equal(t, bson.M{"password": 0, "active": 0}, q.Projection)

	q = build(t, userSchema, "fields=-email")
	assert.Equal(t, bson.M{"password": 0, "active": 0, "email": 0}, q.Projection)

	q = build(t, userSchema, "fields=name")
	assert.Equal(t, bson.M{"name": 1}, q.Projection)

	_, err := New(userSchema, mustParse(t, "fields=password")).LimitFields().Build()
	requireValidationError(t, err, "Invalid field: password.")

	q, err = New(userSchema, nil).Build()
	require.NoError(t, err)
	assert.Equal(t, bson.M{"password": 0, "active": 0}, q.Projection, "hidden fields excluded even without LimitFields")
}

func TestFeatures_PaginateArithmetic(t *testing.T) {
	tests := []struct {
		raw       string
		skip      int64
		limit     int64
		requested bool
	}{
		{raw: "", skip: 0, limit: 100},
		{raw: "page=3&limit=10", skip: 20, limit: 10, requested: true},
		{raw: "page=2", skip: 100, limit: 100, requested: true},
		{raw: "page=abc&limit=-5", skip: 0, limit: 100, requested: true},
		{raw: "page=0&limit=0", skip: 0, limit: 100, requested: true},
		{raw: "limit=5", skip: 0, limit: 5},
		{raw: "page=922337203685477581&limit=100", skip: math.MaxInt64, limit: 100, requested: true},
		{raw: "page=3&limit=9223372036854775807", skip: math.MaxInt64, limit: math.MaxInt64, requested: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := New(tourSchema, mustParse(t, tt.raw)).Paginate()
			assert.Equal(t, tt.skip, f.Skip())
			assert.Equal(t, tt.limit, f.Limit())
			assert.Equal(t, tt.requested, f.PageRequested())
		})
	}
}

func TestFeatures_HugePageNeverWrapsToFirstPage(t *testing.T) {
	q := build(t, tourSchema, "page=922337203685477581&limit=100")

	assert.Equal(t, int64(math.MaxInt64), q.Skip)
	require.NotNil(t, q.FindOptions().Skip)
	assert.Equal(t, int64(math.MaxInt64), *q.FindOptions().Skip)
}

func TestFeatures_ScopeMerged(t *testing.T) {
	tourID := primitive.NewObjectID()
	reviewSchema := &Schema{Fields: map[string]Kind{"rating": Number, "tour": ObjectID}}

	q, err := New(reviewSchema, mustParse(t, "rating[gte]=4")).WithScope(bson.M{"tour": tourID}).Filter().Build()
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$and": bson.A{bson.M{"tour": tourID}, bson.M{"rating": bson.M{"$gte": 4.0}}}}, q.Filter)

	q, err = New(reviewSchema, nil).WithScope(bson.M{"tour": tourID}).Filter().Build()
	require.NoError(t, err)
	assert.Equal(t, bson.M{"tour": tourID}, q.Filter)
}

func TestFeatures_FirstErrorWins(t *testing.T) {
	f := New(tourSchema, mustParse(t, "price=abc&sort=nope")).Filter().Sort()
	requireValidationError(t, f.Err, "Invalid price: abc.")
}

func TestQuery_FindOptions(t *testing.T) {
	q := build(t, tourSchema, "sort=price&fields=name&page=2&limit=5")
	opts := q.FindOptions()

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(5), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}, opts.Sort)
	assert.Equal(t, bson.M{"name": 1}, opts.Projection)
}
