package usecase

import (
	"context"

	"tourbook/internal/domain/entity"
)

// UpdateMeInput carries the profile fields a user may change about themselves.
// Password fields are accepted only so they can be rejected with a pointer to the right route.
type UpdateMeInput struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=80"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Password        string  `json:"password,omitempty"`
	ConfirmPassword string  `json:"passwordConfirm,omitempty"`
}

// UserUsecase defines the interface for user-related business operations.
// The embedded resource operations are for administrators; the rest act on the caller.
type UserUsecase interface {
	ResourceUsecase[entity.User]

	// Me returns the authenticated user.
	Me(ctx context.Context) (*entity.User, error)

	// UpdateMe changes the caller's name or email.
	UpdateMe(ctx context.Context, input *UpdateMeInput) (*entity.User, error)

	// DeleteMe deactivates the caller's account.
	DeleteMe(ctx context.Context) error
}
