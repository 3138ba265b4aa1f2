package impl

import (
	"context"
	"log/slog"
	"time"

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

type reviewService struct {
	*resourceService[entity.Review]

	reviewRepo repository.ReviewRepository
	tourRepo   repository.TourRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	validator  *util.Validator
	now        func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	TourRepo   repository.TourRepository
	UserRepo   repository.UserRepository
	Publisher  service.EventPublisher
	Validator  *util.Validator
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	srv := &reviewService{
		reviewRepo: params.ReviewRepo,
		tourRepo:   params.TourRepo,
		userRepo:   params.UserRepo,
		publisher:  params.Publisher,
		validator:  params.Validator,
		now:        time.Now,
	}
	srv.resourceService = newResourceService("reviews", repository.Collection[entity.Review](params.ReviewRepo), reviewSchema, Hooks[entity.Review]{
		Prepare:      srv.prepare,
		Authorize:    srv.authorize,
		AfterWrite:   srv.afterWrite,
		AfterDelete:  srv.afterDelete,
		PopulateOne:  srv.populateOne,
		PopulateMany: srv.populateMany,
	}, params.Logger)

	return srv
}

// Create maps a violation of the one-review-per-tour index to a clear message.
func (srv *reviewService) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	created, err := srv.resourceService.Create(ctx, review)
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.ErrorCode() == domainerrors.CodeConflict {
		return nil, domainerrors.ErrAlreadyReviewed
	}

	return created, err
}

// prepare stamps the author on new reviews and checks the reviewed tour exists.
func (srv *reviewService) prepare(ctx context.Context, review *entity.Review, creating bool) error {
	if creating {
		user := deliverycontext.GetUser(ctx)
		if user == nil {
			return domainerrors.ErrTokenMissing
		}
		review.User = user.ID
		review.CreatedAt = srv.now()
	}

	if err := srv.validator.Validate(review); err != nil {
		return err
	}
	if review.Tour.IsZero() {
		return domainerrors.NewInvalidInputError([]string{"Review must belong to a tour"})
	}

	if !creating {
		return nil
	}

	if _, err := srv.tourRepo.FindByID(ctx, review.Tour); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.NewNotFoundError("No tour found with that ID")
		}

		return errors.Wrap(err, "failed to find reviewed tour")
	}

	exists, err := srv.reviewRepo.Exists(ctx, review.Tour, review.User)
	if err != nil {
		return errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return domainerrors.ErrAlreadyReviewed
	}

	return nil
}

// authorize lets authors change their own reviews and admins change any.
func (srv *reviewService) authorize(ctx context.Context, review *entity.Review) error {
	user := deliverycontext.GetUser(ctx)
	if user == nil {
		return domainerrors.ErrTokenMissing
	}
	if user.Roles.Contains(entity.RoleAdmin) || review.OwnedBy(user.ID) {
		return nil
	}

	return domainerrors.ErrNotReviewOwner
}

func (srv *reviewService) afterWrite(ctx context.Context, review *entity.Review, action string) error {
	return srv.recalculateRatings(ctx, review, action)
}

func (srv *reviewService) afterDelete(ctx context.Context, review *entity.Review) error {
	return srv.recalculateRatings(ctx, review, service.ReviewDeleted)
}

// recalculateRatings syncs the reviewed tour's rating statistics and publishes
// the change for downstream consumers on a best-effort basis.
func (srv *reviewService) recalculateRatings(ctx context.Context, review *entity.Review, action string) error {
	quantity, average, err := srv.syncRatings(ctx, review.Tour)
	if errors.Is(err, repository.ErrNotFound) {
		srv.log(ctx).Warn("Reviewed tour no longer exists", slog.String("tour_id", review.Tour.Hex()))

		return nil
	}
	if err != nil {
		return err
	}

	event := &service.ReviewChangedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		TourID:          review.Tour.Hex(),
		ReviewID:        review.ID.Hex(),
		Action:          action,
		RatingsQuantity: quantity,
		RatingsAverage:  average,
	}
	if err := srv.publisher.PublishReviewChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review change",
			slog.String("tour_id", event.TourID),
			slog.Any("error", err),
		)
	}

	return nil
}

// ReconcileRatings implements usecase.ReviewUsecase.
func (srv *reviewService) ReconcileRatings(ctx context.Context, tourID string) error {
	id, err := primitive.ObjectIDFromHex(tourID)
	if err != nil {
		return domainerrors.NewInvalidValueError("tour_id", tourID)
	}

	if _, _, err := srv.syncRatings(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.NewNotFoundError("No tour found with that ID")
		}

		return err
	}

	return nil
}

// syncRatings is the only path that writes a tour's rating statistics.
func (srv *reviewService) syncRatings(ctx context.Context, tourID primitive.ObjectID) (int, float64, error) {
	summary, err := srv.reviewRepo.RatingSummary(ctx, tourID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate ratings")
	}

	quantity, average := entity.NormalizeRatings(summary.Quantity, summary.Average)
	if err := srv.tourRepo.UpdateRatings(ctx, tourID, quantity, average); err != nil {
		return 0, 0, errors.Wrap(err, "failed to update tour ratings")
	}

	srv.log(ctx).Debug("Tour ratings recalculated",
		slog.String("tour_id", tourID.Hex()),
		slog.Int("ratings_quantity", quantity),
		slog.Float64("ratings_average", average),
	)

	return quantity, average, nil
}

func (srv *reviewService) populateOne(ctx context.Context, review *entity.Review) error {
	return attachAuthors(ctx, srv.userRepo, []*entity.Review{review})
}

func (srv *reviewService) populateMany(ctx context.Context, reviews []*entity.Review) error {
	return attachAuthors(ctx, srv.userRepo, reviews)
}
