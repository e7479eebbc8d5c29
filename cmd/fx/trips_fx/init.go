package trips_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripnation/internal/catalog"
	"tripnation/internal/repositories"
	"tripnation/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, cat *catalog.Catalog,
	pricingService services.PricingServiceInterface, logger *zap.Logger) services.TripServiceInterface {

	return services.NewTripService(tripRepo, cat, pricingService, logger)
}
