package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"tourbook/config"
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

// statsMinRating is the rating threshold of the tour statistics report.
const statsMinRating = 4.5

type tourService struct {
	*resourceService[entity.Tour]

	tourRepo   repository.TourRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	qrCode     service.QRCodeService
	validator  *util.Validator
	publicURL  string
	now        func() time.Time
}

// TourServiceParams holds dependencies for TourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	TourRepo   repository.TourRepository
	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	QRCode     service.QRCodeService
	Validator  *util.Validator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTourService is the constructor for tourService.
func NewTourService(params TourServiceParams) usecase.TourUsecase {
	srv := &tourService{
		tourRepo:   params.TourRepo,
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		qrCode:     params.QRCode,
		validator:  params.Validator,
		publicURL:  strings.TrimRight(params.Config.HTTP.PublicURL, "/"),
		now:        time.Now,
	}
	srv.resourceService = newResourceService("tours", repository.Collection[entity.Tour](params.TourRepo), tourSchema, Hooks[entity.Tour]{
		Prepare:     srv.prepare,
		PopulateOne: srv.populate,
	}, params.Logger)

	return srv
}

// prepare derives the slug and enforces the invariants the struct tags cannot express.
func (srv *tourService) prepare(_ context.Context, tour *entity.Tour, creating bool) error {
	if creating {
		tour.CreatedAt = srv.now()
		tour.ApplyRatings(0, 0)
	}
	tour.Normalize()

	if err := srv.validator.Validate(tour); err != nil {
		return err
	}
	if !tour.DiscountValid() {
		return domainerrors.NewInvalidInputError([]string{
			fmt.Sprintf("Discount price (%v) should be below regular price", *tour.PriceDiscount),
		})
	}

	return nil
}

// populate attaches guide profiles and reviews with their authors.
func (srv *tourService) populate(ctx context.Context, tour *entity.Tour) error {
	guides, err := srv.userRepo.FindByIDs(ctx, tour.Guides)
	if err != nil {
		return errors.Wrap(err, "failed to load guides")
	}
	tour.GuideDetails = orderByIDs(tour.Guides, guides)

	reviews, err := srv.reviewRepo.FindByTour(ctx, tour.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load reviews")
	}
	if err := attachAuthors(ctx, srv.userRepo, reviews); err != nil {
		return err
	}
	tour.Reviews = reviews

	return nil
}

func (srv *tourService) Stats(ctx context.Context) ([]*entity.TourStats, error) {
	stats, err := srv.tourRepo.Stats(ctx, statsMinRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate tour stats")
	}

	return stats, nil
}

func (srv *tourService) MonthlyPlan(ctx context.Context, year string) ([]*entity.MonthlyPlan, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return nil, domainerrors.NewInvalidValueError("year", year)
	}

	plan, err := srv.tourRepo.MonthlyPlan(ctx, y)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate monthly plan")
	}

	return plan, nil
}

func (srv *tourService) ToursWithin(ctx context.Context, distance, latlng, unit string) ([]*entity.Tour, error) {
	center, u, err := parseGeoInput(latlng, unit)
	if err != nil {
		return nil, err
	}

	d, err := strconv.ParseFloat(distance, 64)
	if err != nil || d <= 0 {
		return nil, domainerrors.NewInvalidValueError("distance", distance)
	}

	tours, err := srv.tourRepo.WithinRadius(ctx, center, u.Radians(d))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tours within radius")
	}

	return tours, nil
}

// Distances computes great-circle distances from latlng to each tour's start location.
func (srv *tourService) Distances(ctx context.Context, latlng, unit string) ([]*entity.TourDistance, error) {
	center, u, err := parseGeoInput(latlng, unit)
	if err != nil {
		return nil, err
	}

	tours, err := srv.tourRepo.FindWithStartLocation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tour start locations")
	}

	distances := make([]*entity.TourDistance, 0, len(tours))
	for _, t := range tours {
		if t.StartLocation == nil {
			continue
		}
		distances = append(distances, &entity.TourDistance{
			ID:       t.ID,
			Name:     t.Name,
			Distance: u.FromMeters(entity.DistanceMeters(center, t.StartLocation.GeoPoint)),
		})
	}
	slices.SortStableFunc(distances, func(a, b *entity.TourDistance) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})

	return distances, nil
}

// ShareQR encodes the tour's API address so it can be opened from a phone.
func (srv *tourService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	tour, _, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateTourQR(srv.publicURL + "/api/v1/tours/" + tour.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tour QR code")
	}

	return png, nil
}

func parseGeoInput(latlng, unit string) (entity.GeoPoint, entity.DistanceUnit, error) {
	center, ok := entity.ParseLatLng(latlng)
	if !ok {
		return entity.GeoPoint{}, "", domainerrors.ErrInvalidLatLng
	}

	u, ok := entity.ParseDistanceUnit(unit)
	if !ok {
		return entity.GeoPoint{}, "", domainerrors.ErrInvalidUnit
	}

	return center, u, nil
}

// orderByIDs returns users in the order of ids, skipping ids with no match.
func orderByIDs(ids []primitive.ObjectID, users []*entity.User) []*entity.User {
	byID := make(map[primitive.ObjectID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	ordered := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}

	return ordered
}

// attachAuthors sets Author on each review from one batched lookup.
func attachAuthors(ctx context.Context, userRepo repository.UserRepository, reviews []*entity.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(reviews))
	for _, r := range reviews {
		if !slices.Contains(ids, r.User) {
			ids = append(ids, r.User)
		}
	}

	users, err := userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load review authors")
	}

	byID := make(map[primitive.ObjectID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, r := range reviews {
		r.Author = byID[r.User]
	}

	return nil
}
