package mongodb

import (
	"context"
	"time"

	"tourbook/internal/domain/entity"
	"tourbook/internal/domain/repository"
	"tourbook/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// publicProfile is what other resources see of a user when populated.
var publicProfile = bson.M{"name": 1, "email": 1, "photo": 1, "roles": 1}

type userRepository struct {
	*collection[entity.User]
}

// NewUserRepository returns a UserRepository that never exposes deactivated accounts.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: newCollection[entity.User](db.Collection(usersCollection), activeUserScope),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.FindOne(ctx, bson.M{"email": entity.NormalizeEmail(email)})
}

func (r *userRepository) FindByOneTimeToken(ctx context.Context, kind repository.OneTimeTokenKind, digest string, now time.Time) (*entity.User, error) {
	return r.FindOne(ctx, oneTimeTokenFilter(kind, digest, now))
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	cursor, err := r.coll.Find(ctx, r.scoped(bson.M{"_id": bson.M{"$in": ids}}), options.Find().SetProjection(publicProfile))
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[entity.User](ctx, cursor)
}

func (r *userRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, r.scoped(bson.M{"_id": id}), bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return errors.WithStack(repository.ErrNotFound)
	}

	return nil
}

func oneTimeTokenFilter(kind repository.OneTimeTokenKind, digest string, now time.Time) bson.M {
	tokenField, expiresField := "passwordResetToken", "passwordResetExpires"
	if kind == repository.EmailVerificationToken {
		tokenField, expiresField = "emailVerificationToken", "emailVerificationExpires"
	}

	return bson.M{
		tokenField:   digest,
		expiresField: bson.M{"$gt": now},
	}
}
