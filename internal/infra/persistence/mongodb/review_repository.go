package mongodb

import (
	"context"

	"tourbook/internal/domain/entity"
	"tourbook/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	*collection[entity.Review]
}

// NewReviewRepository returns a ReviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{
		collection: newCollection[entity.Review](db.Collection(reviewsCollection), nil),
	}
}

func (r *reviewRepository) RatingSummary(ctx context.Context, tourID primitive.ObjectID) (*repository.RatingSummary, error) {
	cursor, err := r.coll.Aggregate(ctx, ratingSummaryPipeline(tourID))
	if err != nil {
		return nil, mapError(err)
	}

	rows, err := decodeAll[struct {
		NRating   int     `bson:"nRating"`
		AvgRating float64 `bson:"avgRating"`
	}](ctx, cursor)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &repository.RatingSummary{}, nil
	}

	return &repository.RatingSummary{Quantity: rows[0].NRating, Average: rows[0].AvgRating}, nil
}

func (r *reviewRepository) FindByTour(ctx context.Context, tourID primitive.ObjectID) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"tour": tourID}, opts)
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[entity.Review](ctx, cursor)
}

func (r *reviewRepository) Exists(ctx context.Context, tourID, userID primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"tour": tourID, "user": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, mapError(err)
	}

	return n > 0, nil
}
