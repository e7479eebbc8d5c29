package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripnation/internal/api/controllers"
	"tripnation/pkg/middleware"
	"tripnation/pkg/utils"
)

// Controllers groups the handlers RegisterRoutes mounts.
type Controllers struct {
	Pricing *controllers.PricingController
	Catalog *controllers.CatalogController
	Quiz    *controllers.QuizController
	Trips   *controllers.TripController
	Reviews *controllers.ReviewController
}

func ProvideRouter(
	logger *zap.Logger,
	tokens *utils.TokenManager,
	pricingController *controllers.PricingController,
	catalogController *controllers.CatalogController,
	quizController *controllers.QuizController,
	tripController *controllers.TripController,
	reviewController *controllers.ReviewController) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	RegisterRoutes(r, middleware.JWTAuthMiddleware(tokens), Controllers{
		Pricing: pricingController,
		Catalog: catalogController,
		Quiz:    quizController,
		Trips:   tripController,
		Reviews: reviewController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, ctl Controllers) {
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	pricingGroup := r.Group("/pricing")
	pricingGroup.POST("/quote", ctl.Pricing.Quote)
	pricingGroup.POST("/quote-form", ctl.Pricing.QuoteForm)
	pricingGroup.GET("/packages/:id", ctl.Pricing.QuotePackage)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/packages", ctl.Catalog.ListPackages)
	catalogGroup.GET("/packages/:slug", ctl.Catalog.GetPackage)
	catalogGroup.GET("/guides", ctl.Catalog.ListGuides)
	catalogGroup.GET("/guides/:id", ctl.Catalog.GetGuide)

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/questions", ctl.Quiz.Questions)
	quizGroup.POST("/classify", ctl.Quiz.Classify)
	quizGroup.POST("/sessions", ctl.Quiz.StartSession)
	quizGroup.GET("/sessions/:id", ctl.Quiz.GetSession)
	quizGroup.POST("/sessions/:id/answer", ctl.Quiz.Answer)
	quizGroup.POST("/sessions/:id/next", ctl.Quiz.Next)
	quizGroup.POST("/sessions/:id/back", ctl.Quiz.Back)
	quizGroup.POST("/sessions/:id/redo", ctl.Quiz.Redo)
	quizGroup.POST("/sessions/:id/close", ctl.Quiz.Close)
	quizGroup.GET("/sessions/:id/result", ctl.Quiz.Result)

	tripsGroup := r.Group("/trips", auth)
	tripsGroup.GET("", ctl.Trips.ListTrips)
	tripsGroup.POST("", ctl.Trips.CreateTrip)
	tripsGroup.POST("/packages/:id/interest", ctl.Trips.AddPackageInterest)
	tripsGroup.GET("/:id", ctl.Trips.GetTrip)
	tripsGroup.PUT("/:id", ctl.Trips.UpdateTrip)
	tripsGroup.DELETE("/:id", ctl.Trips.DeleteTrip)
	tripsGroup.GET("/:id/checkout", ctl.Trips.Checkout)

	reviewsGroup := r.Group("/reviews")
	reviewsGroup.GET("", ctl.Reviews.ListReviews)
	reviewsGroup.POST("", auth, ctl.Reviews.AddReview)
}
