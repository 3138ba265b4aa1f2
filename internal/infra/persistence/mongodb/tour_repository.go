package mongodb

import (
	"context"

	"tourbook/internal/domain/entity"
	"tourbook/internal/domain/repository"
	"tourbook/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tourRepository struct {
	*collection[entity.Tour]
}

// NewTourRepository returns a TourRepository that never exposes secret tours.
func NewTourRepository(db *mongo.Database) repository.TourRepository {
	return &tourRepository{
		collection: newCollection[entity.Tour](db.Collection(toursCollection), secretTourScope),
	}
}

func (r *tourRepository) Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error) {
	cursor, err := r.coll.Aggregate(ctx, tourStatsPipeline(minRating))
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[entity.TourStats](ctx, cursor)
}

func (r *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error) {
	cursor, err := r.coll.Aggregate(ctx, monthlyPlanPipeline(year))
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[entity.MonthlyPlan](ctx, cursor)
}

func (r *tourRepository) WithinRadius(ctx context.Context, center entity.GeoPoint, radians float64) ([]*entity.Tour, error) {
	cursor, err := r.coll.Find(ctx, r.scoped(withinRadiusFilter(center.Lng(), center.Lat(), radians)))
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[entity.Tour](ctx, cursor)
}

func (r *tourRepository) FindWithStartLocation(ctx context.Context) ([]*entity.Tour, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "startLocation": 1})

	cursor, err := r.coll.Find(ctx, r.scoped(bson.M{"startLocation.coordinates": bson.M{"$exists": true}}), opts)
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[entity.Tour](ctx, cursor)
}

// UpdateRatings is deliberately unscoped: secret tours still carry statistics.
func (r *tourRepository) UpdateRatings(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"ratingsQuantity": quantity, "ratingsAverage": average}},
	)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return errors.WithStack(repository.ErrNotFound)
	}

	return nil
}
