package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripnation/internal/catalog"
	"tripnation/internal/repositories"
	"tripnation/internal/services"
)

var Module = fx.Provide(provideQuizService)

func provideQuizService(cat *catalog.Catalog, sessions repositories.QuizSessionRepository, logger *zap.Logger) services.QuizServiceInterface {
	return services.NewQuizService(cat, sessions, logger)
}
