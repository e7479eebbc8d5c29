package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripnation/internal/models/db_models"
	"tripnation/internal/models/response_models"
	"tripnation/internal/repositories"
	"tripnation/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, userID uuid.UUID, tripTitle string, rating int, comment string, photos []string) (*response_models.ReviewResponse, error)
	ListReviews(ctx context.Context, page, pageSize, rating int) (*response_models.PaginatedResponse[response_models.ReviewResponse], error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	logger     *zap.Logger
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, logger *zap.Logger) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo, logger: logger}
}

func (s *ReviewService) AddReview(ctx context.Context, userID uuid.UUID, tripTitle string, rating int, comment string, photos []string) (*response_models.ReviewResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", utils.ErrInvalidInput)
	}
	tripTitle, comment = strings.TrimSpace(tripTitle), strings.TrimSpace(comment)
	if tripTitle == "" || comment == "" {
		return nil, fmt.Errorf("%w: trip title and comment are required", utils.ErrInvalidInput)
	}

	review := &db_models.Review{
		UserID:    userID,
		TripTitle: tripTitle,
		Rating:    rating,
		Comment:   comment,
		Photos:    photos,
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		s.logger.Error("create review", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponse(review), nil
}

func (s *ReviewService) ListReviews(ctx context.Context, page, pageSize, rating int) (*response_models.PaginatedResponse[response_models.ReviewResponse], error) {
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("%w: rating filter must be between 1 and 5", utils.ErrInvalidInput)
	}

	reviews, total, err := s.reviewRepo.ListReviews(ctx, page, pageSize, rating)
	if err != nil {
		s.logger.Error("list reviews", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, *toReviewResponse(&reviews[i]))
	}
	return &response_models.PaginatedResponse[response_models.ReviewResponse]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func toReviewResponse(r *db_models.Review) *response_models.ReviewResponse {
	photos := []string(r.Photos)
	if photos == nil {
		photos = []string{}
	}
	return &response_models.ReviewResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		TripTitle: r.TripTitle,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Photos:    photos,
		CreatedAt: r.CreatedAt,
	}
}
