package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tourbook/config"
	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/entity"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/domain/repository"
	"tourbook/internal/domain/service"
	"tourbook/internal/usecase"
	"tourbook/internal/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

const (
	resetPasswordPath = "/api/v1/users/resetPassword/"
	verifyEmailPath   = "/api/v1/users/verify-email/"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo             repository.UserRepository
	hasher               service.PasswordHasher
	tokenService         service.TokenService
	oneTimeTokens        service.OneTimeTokenGenerator
	mailer               service.Mailer
	validator            *util.Validator
	publicURL            string
	resetTokenTTL        time.Duration
	verificationTokenTTL time.Duration
	logger               *slog.Logger
	now                  func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OneTimeTokens service.OneTimeTokenGenerator
	Mailer        service.Mailer
	Validator     *util.Validator
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		oneTimeTokens: params.OneTimeTokens,
		mailer:        params.Mailer,
		validator:     params.Validator,
		publicURL:     strings.TrimRight(params.Config.HTTP.PublicURL, "/"),
		logger:        params.Logger,
		now:           time.Now,
	}
	if params.Config.Auth != nil {
		srv.resetTokenTTL = params.Config.Auth.ResetTokenTTL
		srv.verificationTokenTTL = params.Config.Auth.VerificationTokenTTL
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account, mails a verification link and logs the user in.
// Failing to send the email does not fail the signup.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if err := srv.validatePassword(input, input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := srv.now()
	user := entity.NewUser(input.Name, input.Email, now)
	user.Password = hash

	token, err := srv.oneTimeTokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}
	user.SetEmailVerificationToken(token.Digest, now.Add(srv.verificationTokenTTL))

	if err := srv.userRepo.Insert(ctx, user); err != nil {
		return nil, storageError(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.String("user_id", user.ID.Hex()))

	email := verificationEmail(user, srv.publicURL+verifyEmailPath+token.Plain, srv.verificationTokenTTL)
	if err := srv.mailer.Send(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to send verification email",
			slog.String("user_id", user.ID.Hex()),
			slog.Any("error", err),
		)
	}

	return srv.issue(user)
}

// Login answers every failure after the presence check with the same message.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Info("Login rejected", slog.String("user_id", user.ID.Hex()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

// Authenticate implements the access gate.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return nil, domainerrors.ErrTokenExpired
	case err != nil:
		return nil, domainerrors.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrPrincipalGone
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find principal")
	}

	if user.ChangedPasswordAfter(claims.IssuedAt) {
		return nil, domainerrors.ErrTokenStale
	}

	return user, nil
}

// ForgotPassword mails a single-use reset link. If the email cannot be sent
// the token is withdrawn so no unusable token stays valid.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	if err := srv.validator.Validate(input); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNoUserWithEmail
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	token, err := srv.oneTimeTokens.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	user.SetPasswordResetToken(token.Digest, srv.now().Add(srv.resetTokenTTL))
	if err := srv.userRepo.Replace(ctx, user.ID, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	email := passwordResetEmail(user, srv.publicURL+resetPasswordPath+token.Plain, srv.resetTokenTTL)
	if err := srv.mailer.Send(ctx, email); err != nil {
		srv.log(ctx).Error("Failed to send password reset email",
			slog.String("user_id", user.ID.Hex()),
			slog.Any("error", err),
		)

		user.ClearPasswordResetToken()
		if err := srv.userRepo.Replace(ctx, user.ID, user); err != nil {
			srv.log(ctx).Error("Failed to withdraw reset token", slog.Any("error", err))
		}

		return domainerrors.ErrEmailDispatch
	}

	srv.log(ctx).Info("Password reset token sent", slog.String("user_id", user.ID.Hex()))

	return nil
}

// ResetPassword consumes a reset token and logs the user in with the new password.
func (srv *authService) ResetPassword(ctx context.Context, token string, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByOneTimeToken(ctx, repository.PasswordResetToken, srv.oneTimeTokens.Digest(token), srv.now())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrTokenInvalidOrExpired
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reset token")
	}

	if err := srv.validatePassword(input, input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	if err := srv.changePassword(ctx, user, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password reset", slog.String("user_id", user.ID.Hex()))

	return srv.issue(user)
}

// VerifyEmail consumes a verification token and logs the user in.
func (srv *authService) VerifyEmail(ctx context.Context, token string) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByOneTimeToken(ctx, repository.EmailVerificationToken, srv.oneTimeTokens.Digest(token), srv.now())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrTokenInvalidOrExpired
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find verification token")
	}

	user.MarkEmailVerified()
	if err := srv.userRepo.Replace(ctx, user.ID, user); err != nil {
		return nil, storageError(err, "failed to verify email")
	}

	srv.log(ctx).Info("Email verified", slog.String("user_id", user.ID.Hex()))

	return srv.issue(user)
}

func (srv *authService) ResendVerification(ctx context.Context) error {
	user, err := srv.principal(ctx)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}

	token, err := srv.oneTimeTokens.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification token")
	}
	user.SetEmailVerificationToken(token.Digest, srv.now().Add(srv.verificationTokenTTL))
	if err := srv.userRepo.Replace(ctx, user.ID, user); err != nil {
		return errors.Wrap(err, "failed to store verification token")
	}

	email := verificationEmail(user, srv.publicURL+verifyEmailPath+token.Plain, srv.verificationTokenTTL)
	if err := srv.mailer.Send(ctx, email); err != nil {
		srv.log(ctx).Error("Failed to send verification email",
			slog.String("user_id", user.ID.Hex()),
			slog.Any("error", err),
		)

		user.ClearEmailVerificationToken()
		if err := srv.userRepo.Replace(ctx, user.ID, user); err != nil {
			srv.log(ctx).Error("Failed to withdraw verification token", slog.Any("error", err))
		}

		return domainerrors.ErrEmailDispatch
	}

	return nil
}

func (srv *authService) UpdateMyPassword(ctx context.Context, input *usecase.UpdatePasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.principal(ctx)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.Password) {
		return nil, domainerrors.ErrWrongCurrentPassword
	}

	if err := srv.validatePassword(input, input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	if err := srv.changePassword(ctx, user, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password updated", slog.String("user_id", user.ID.Hex()))

	return srv.issue(user)
}

// principal reloads the caller so credential fields are current.
func (srv *authService) principal(ctx context.Context) (*entity.User, error) {
	current := deliverycontext.GetUser(ctx)
	if current == nil {
		return nil, domainerrors.ErrTokenMissing
	}

	user, err := srv.userRepo.FindByID(ctx, current.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrPrincipalGone
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find principal")
	}

	return user, nil
}

// validatePassword checks the input's tags, then that both password entries match.
func (srv *authService) validatePassword(input any, password, confirm string) error {
	if err := srv.validator.Validate(input); err != nil {
		return err
	}
	if password != confirm {
		return domainerrors.ErrPasswordMismatch
	}

	return nil
}

// changePassword stores a new hash and invalidates outstanding reset tokens.
func (srv *authService) changePassword(ctx context.Context, user *entity.User, password string) error {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.SetPassword(hash, srv.now())
	user.ClearPasswordResetToken()

	if err := srv.userRepo.Replace(ctx, user.ID, user); err != nil {
		return storageError(err, "failed to update password")
	}

	return nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
