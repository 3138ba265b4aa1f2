package usecase

import (
	"context"

	"tourbook/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Name            string `json:"name" validate:"required,max=80"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"passwordConfirm" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordInput names the account that should receive a reset link.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput is the new password chosen through a reset link.
type ResetPasswordInput struct {
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"passwordConfirm" validate:"required"`
}

// UpdatePasswordInput changes the password of an authenticated user.
type UpdatePasswordInput struct {
	CurrentPassword string `json:"passwordCurrent" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"passwordConfirm" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is a freshly minted bearer token and the user it belongs to.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the credential lifecycle and the access gate.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token to an active user whose password
	// has not changed since the token was issued. It never writes.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, token string, input *ResetPasswordInput) (*AuthOutput, error)
	VerifyEmail(ctx context.Context, token string) (*AuthOutput, error)

	// ResendVerification mails a fresh verification link to the caller.
	ResendVerification(ctx context.Context) error

	// UpdateMyPassword changes the caller's password after checking the current one.
	UpdateMyPassword(ctx context.Context, input *UpdatePasswordInput) (*AuthOutput, error)
}
