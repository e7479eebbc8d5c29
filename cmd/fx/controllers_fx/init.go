package controllers_fx

import (
	"go.uber.org/fx"

	"tripnation/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPricingController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewReviewController))
