package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripnation/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	UpdateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	GetTripByUserAndPackage(ctx context.Context, userID uuid.UUID, packageID int) (*dbm.Trip, error)
	ListTripsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Trip, int64, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) UpdateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// GetTripByID returns (nil, nil) when no trip has that id.
func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}

	var trip dbm.Trip
	if err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) GetTripByUserAndPackage(ctx context.Context, userID uuid.UUID, packageID int) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND package_id = ?", userID, dbm.TripKindPackaged, packageID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTripsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dbm.Trip, int64, error) {
	var (
		trips []dbm.Trip
		total int64
	)
	q := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("start_date ASC, created_at DESC").
		Find(&trips).Error
	return trips, total, err
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).Delete(&dbm.Trip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
