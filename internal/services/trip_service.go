package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripnation/internal/catalog"
	dbm "tripnation/internal/models/db_models"
	"tripnation/internal/models/request_models"
	"tripnation/internal/models/response_models"
	"tripnation/internal/repositories"
	"tripnation/pkg/pricing"
	"tripnation/pkg/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TripServiceInterface interface {
	CreateUserTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	AddPackageInterest(ctx context.Context, userID uuid.UUID, packageID int) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userID uuid.UUID, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error
	GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) (*response_models.PaginatedResponse[response_models.TripResponse], error)
	QuoteTrip(ctx context.Context, userID uuid.UUID, tripID string, withInsurance bool) (*response_models.CheckoutResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	catalog  *catalog.Catalog
	pricing  PricingServiceInterface
	logger   *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, cat *catalog.Catalog, pricingService PricingServiceInterface, logger *zap.Logger) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, catalog: cat, pricing: pricingService, logger: logger}
}

func (s *TripService) CreateUserTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	destination := strings.TrimSpace(req.Destination)
	sport := strings.TrimSpace(req.Sport)
	if destination == "" || sport == "" {
		return nil, fmt.Errorf("%w: destination and sport are required", utils.ErrInvalidInput)
	}
	start, end, err := parseTripDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkGuide(req.GuideID); err != nil {
		return nil, err
	}

	people := req.People
	if people == 0 {
		people = 1
	}
	if people < 1 {
		return nil, fmt.Errorf("%w: people must be at least 1", utils.ErrInvalidInput)
	}

	trip := &dbm.Trip{
		UserID:      userID,
		Kind:        dbm.TripKindUser,
		Destination: destination,
		Sport:       sport,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget.NullDecimal(),
		People:      people,
		Notes:       strings.TrimSpace(req.Notes),
		IsOpen:      req.IsOpen,
		NeedsGuide:  req.NeedsGuide || req.GuideID != nil,
		GuideID:     req.GuideID,
	}
	if trip.IsOpen {
		trip.InterestedCount = 1
	}

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		s.logger.Error("create trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	tripsCreated.WithLabelValues(string(dbm.TripKindUser)).Inc()
	return toTripResponse(trip), nil
}

// AddPackageInterest turns a catalog package into a trip starting today. A
// user can hold one trip per package.
func (s *TripService) AddPackageInterest(ctx context.Context, userID uuid.UUID, packageID int) (*response_models.TripResponse, error) {
	pkg, ok := s.catalog.PackageByID(packageID)
	if !ok {
		return nil, utils.ErrPackageNotFound
	}

	existing, err := s.tripRepo.GetTripByUserAndPackage(ctx, userID, packageID)
	if err != nil {
		s.logger.Error("find package trip", zap.Int("package_id", packageID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrTripAlreadyAdded
	}

	start := utils.TodayBR()
	trip := &dbm.Trip{
		UserID:          userID,
		Kind:            dbm.TripKindPackaged,
		PackageID:       &pkg.ID,
		Destination:     pkg.Title,
		Sport:           pkg.Sport,
		StartDate:       start,
		EndDate:         utils.AddDaysBR(start, pkg.DurationDays()),
		Budget:          pkg.LineItems().BasePrice.NullDecimal(),
		People:          1,
		Notes:           pkg.Description,
		IsOpen:          true,
		InterestedCount: 1,
		NeedsGuide:      pkg.GuideID != "",
	}
	if pkg.GuideID != "" {
		guideID := pkg.GuideID
		trip.GuideID = &guideID
	}

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		s.logger.Error("create package trip", zap.Int("package_id", packageID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	tripsCreated.WithLabelValues(string(dbm.TripKindPackaged)).Inc()
	return toTripResponse(trip), nil
}

// UpdateTrip applies the fields present in req. Packaged trips keep the
// destination, sport, budget and open flag of their package; sending a
// different value for any of them fails with ErrTripFieldLocked.
func (s *TripService) UpdateTrip(ctx context.Context, userID uuid.UUID, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if trip.IsPackaged() {
		if err := checkPackagedLocks(trip, req); err != nil {
			return nil, err
		}
	}

	if req.Destination != nil {
		if trip.Destination = strings.TrimSpace(*req.Destination); trip.Destination == "" {
			return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
		}
	}
	if req.Sport != nil {
		if trip.Sport = strings.TrimSpace(*req.Sport); trip.Sport == "" {
			return nil, fmt.Errorf("%w: sport is required", utils.ErrInvalidInput)
		}
	}
	if req.StartDate != nil || req.EndDate != nil {
		startRaw, endRaw := utils.FormatDateBR(trip.StartDate), utils.FormatDateBR(trip.EndDate)
		if req.StartDate != nil {
			startRaw = *req.StartDate
		}
		if req.EndDate != nil {
			endRaw = *req.EndDate
		}
		start, end, err := parseTripDates(startRaw, endRaw)
		if err != nil {
			return nil, err
		}
		trip.StartDate, trip.EndDate = start, end
	}
	if req.Budget != nil {
		trip.Budget = req.Budget.NullDecimal()
	}
	if req.People != nil {
		if *req.People < 1 {
			return nil, fmt.Errorf("%w: people must be at least 1", utils.ErrInvalidInput)
		}
		trip.People = *req.People
	}
	if req.Notes != nil {
		trip.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.IsOpen != nil {
		trip.IsOpen = *req.IsOpen
	}
	if req.GuideID != nil {
		if err := s.checkGuide(req.GuideID); err != nil {
			return nil, err
		}
		trip.GuideID = req.GuideID
		trip.NeedsGuide = true
	}
	if req.NeedsGuide != nil {
		trip.NeedsGuide = *req.NeedsGuide
		if !trip.NeedsGuide {
			trip.GuideID = nil
		}
	}

	if err := s.tripRepo.UpdateTrip(ctx, trip); err != nil {
		s.logger.Error("update trip", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toTripResponse(trip), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error {
	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		s.logger.Error("delete trip", zap.String("trip_id", tripID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) (*response_models.PaginatedResponse[response_models.TripResponse], error) {
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	trips, total, err := s.tripRepo.ListTripsByUser(ctx, userID, page, pageSize)
	if err != nil {
		s.logger.Error("list trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, *toTripResponse(&trips[i]))
	}
	return &response_models.PaginatedResponse[response_models.TripResponse]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *TripService) QuoteTrip(ctx context.Context, userID uuid.UUID, tripID string, withInsurance bool) (*response_models.CheckoutResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	checkout := s.pricing.Checkout(trip, withInsurance)
	return &checkout, nil
}

// ownedTrip hides other users' trips behind ErrTripNotFound.
func (s *TripService) ownedTrip(ctx context.Context, userID uuid.UUID, tripID string) (*dbm.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		s.logger.Error("get trip", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userID {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) checkGuide(guideID *string) error {
	if guideID == nil {
		return nil
	}
	if _, ok := s.catalog.GuideByID(*guideID); !ok {
		return utils.ErrGuideNotFound
	}
	return nil
}

func checkPackagedLocks(trip *dbm.Trip, req request_models.UpdateTripRequest) error {
	locked := func(field string) error {
		return fmt.Errorf("%w: %s", utils.ErrTripFieldLocked, field)
	}
	if req.Destination != nil && strings.TrimSpace(*req.Destination) != trip.Destination {
		return locked("destination")
	}
	if req.Sport != nil && strings.TrimSpace(*req.Sport) != trip.Sport {
		return locked("sport")
	}
	if req.Budget != nil && !req.Budget.Equal(pricing.FromNullDecimal(trip.Budget)) {
		return locked("budget")
	}
	if req.IsOpen != nil && *req.IsOpen != trip.IsOpen {
		return locked("is_open")
	}
	return nil
}

func parseTripDates(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := utils.ParseDateBR(strings.TrimSpace(startRaw))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := utils.ParseDateBR(strings.TrimSpace(endRaw))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, utils.ErrInvalidTripDates
	}
	return start, end, nil
}

func normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}

func toTripResponse(t *dbm.Trip) *response_models.TripResponse {
	budget := pricing.FromNullDecimal(t.Budget)
	return &response_models.TripResponse{
		ID:              t.ID.String(),
		Kind:            string(t.Kind),
		PackageID:       t.PackageID,
		Destination:     t.Destination,
		Sport:           t.Sport,
		StartDate:       utils.FormatDateBR(t.StartDate),
		EndDate:         utils.FormatDateBR(t.EndDate),
		Budget:          budget,
		BudgetFormatted: pricing.FormatCurrency(budget),
		People:          t.People,
		Notes:           t.Notes,
		IsOpen:          t.IsOpen,
		InterestedCount: t.InterestedCount,
		NeedsGuide:      t.NeedsGuide,
		GuideID:         t.GuideID,
		CreatedAt:       t.CreatedAt,
	}
}
