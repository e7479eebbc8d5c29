package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripnation/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	// ListReviews filters by rating unless rating is 0.
	ListReviews(ctx context.Context, page, pageSize, rating int) ([]db_models.Review, int64, error)
}
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) ListReviews(ctx context.Context, page, pageSize, rating int) ([]db_models.Review, int64, error) {
	var (
		reviews []db_models.Review
		total   int64
	)
	q := r.db.WithContext(ctx).Model(&db_models.Review{})
	if rating > 0 {
		q = q.Where("rating = ?", rating)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, total, err
}
