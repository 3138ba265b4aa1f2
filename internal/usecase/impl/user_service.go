package impl

import (
	"context"
	"log/slog"

	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/entity"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/domain/repository"
	"tourbook/internal/usecase"
	"tourbook/internal/util"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	*resourceService[entity.User]

	userRepo  repository.UserRepository
	validator *util.Validator
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Validator *util.Validator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		userRepo:  params.UserRepo,
		validator: params.Validator,
	}
	srv.resourceService = newResourceService("users", repository.Collection[entity.User](params.UserRepo), userSchema, Hooks[entity.User]{
		Prepare: srv.prepare,
	}, params.Logger)

	return srv
}

func (srv *userService) prepare(_ context.Context, user *entity.User, _ bool) error {
	user.Email = entity.NormalizeEmail(user.Email)

	if err := srv.validator.Validate(user); err != nil {
		return err
	}
	if len(user.Roles) == 0 || !user.Roles.Valid() {
		return domainerrors.NewInvalidInputError([]string{"roles must be one or more of: user, guide, lead-guide, admin"})
	}

	return nil
}

// Me returns the principal resolved by the access gate.
func (srv *userService) Me(ctx context.Context) (*entity.User, error) {
	user := deliverycontext.GetUser(ctx)
	if user == nil {
		return nil, domainerrors.ErrTokenMissing
	}

	return srv.Get(ctx, user.ID.Hex())
}

// UpdateMe changes only the name and email of the caller.
func (srv *userService) UpdateMe(ctx context.Context, input *usecase.UpdateMeInput) (*entity.User, error) {
	if input.Password != "" || input.ConfirmPassword != "" {
		return nil, domainerrors.ErrPasswordRoute
	}

	user := deliverycontext.GetUser(ctx)
	if user == nil {
		return nil, domainerrors.ErrTokenMissing
	}

	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating own profile", slog.String("user_id", user.ID.Hex()))

	return srv.Update(ctx, user.ID.Hex(), func(u *entity.User) error {
		if input.Name != nil {
			u.Name = *input.Name
		}
		if input.Email != nil {
			u.Email = *input.Email
		}

		return nil
	})
}

// DeleteMe soft-deletes the caller; the account disappears from every user query.
func (srv *userService) DeleteMe(ctx context.Context) error {
	user := deliverycontext.GetUser(ctx)
	if user == nil {
		return domainerrors.ErrTokenMissing
	}

	srv.log(ctx).Info("Deactivating account", slog.String("user_id", user.ID.Hex()))

	if err := srv.userRepo.Deactivate(ctx, user.ID); err != nil {
		return storageError(err, "failed to deactivate user")
	}

	return nil
}
