package review_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripnation/internal/repositories"
	"tripnation/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface, logger *zap.Logger) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, logger)
}
