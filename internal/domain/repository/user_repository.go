package repository

import (
	"context"
	"time"

	"tourbook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OneTimeTokenKind selects which token pair a lookup matches.
type OneTimeTokenKind int

const (
	PasswordResetToken OneTimeTokenKind = iota
	EmailVerificationToken
)

// UserRepository stores accounts. Soft-deleted users are invisible to every method.
type UserRepository interface {
	Collection[entity.User]

	// FindByEmail retrieves an active user, including the password hash.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByOneTimeToken retrieves the user holding digest whose expiry is after now.
	FindByOneTimeToken(ctx context.Context, kind OneTimeTokenKind, digest string, now time.Time) (*entity.User, error)

	// FindByIDs retrieves the public profiles of several users.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.User, error)

	// Deactivate soft-deletes a user.
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}
