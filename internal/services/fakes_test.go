package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripnation/internal/catalog"
	dbm "tripnation/internal/models/db_models"
	"tripnation/pkg/pricing"
)

var errBoom = errors.New("boom")

type fakeTripRepo struct {
	trips map[uuid.UUID]dbm.Trip
	err   error
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[uuid.UUID]dbm.Trip{}}
}

func (r *fakeTripRepo) CreateTrip(_ context.Context, trip *dbm.Trip) error {
	if r.err != nil {
		return r.err
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *fakeTripRepo) UpdateTrip(_ context.Context, trip *dbm.Trip) error {
	if r.err != nil {
		return r.err
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *fakeTripRepo) GetTripByID(_ context.Context, tripID string) (*dbm.Trip, error) {
	if r.err != nil {
		return nil, r.err
	}
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	t, ok := r.trips[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTripRepo) GetTripByUserAndPackage(_ context.Context, userID uuid.UUID, packageID int) (*dbm.Trip, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.trips {
		if t.UserID == userID && t.PackageID != nil && *t.PackageID == packageID {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTripRepo) ListTripsByUser(_ context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Trip, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var all []dbm.Trip
	for _, t := range r.trips {
		if t.UserID == userID {
			all = append(all, t)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartDate.Before(all[j].StartDate) })
	lo := min((page-1)*pageSize, len(all))
	hi := min(lo+pageSize, len(all))
	return all[lo:hi], int64(len(all)), nil
}

func (r *fakeTripRepo) DeleteTrip(_ context.Context, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	if _, ok := r.trips[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.trips, id)
	return nil
}

type fakeReviewRepo struct {
	reviews []dbm.Review
	err     error
}

func (r *fakeReviewRepo) CreateReview(_ context.Context, review *dbm.Review) error {
	if r.err != nil {
		return r.err
	}
	review.ID = uuid.New()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ListReviews(_ context.Context, page, pageSize, rating int) ([]dbm.Review, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var matched []dbm.Review
	for _, rv := range r.reviews {
		if rating == 0 || rv.Rating == rating {
			matched = append(matched, rv)
		}
	}
	lo := min((page-1)*pageSize, len(matched))
	hi := min(lo+pageSize, len(matched))
	return matched[lo:hi], int64(len(matched)), nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func testPricingService(t *testing.T) PricingServiceInterface {
	t.Helper()
	return NewPricingService(testCatalog(t), PricingConfig{
		DefaultFee: pricing.DefaultFee,
		Insurance:  pricing.DefaultInsurance,
	}, zap.NewNop())
}
