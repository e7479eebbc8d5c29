package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripnation/internal/infra"
	"tripnation/pkg/utils"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideLogger,
	provideTokenManager,
)

func provideLogger(lc fx.Lifecycle, cfg infra.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	for _, w := range cfg.Warnings {
		logger.Warn("Ignoring config value",
			zap.String("key", w.Key),
			zap.String("value", w.Value),
			zap.String("default", w.Default),
			zap.Error(w.Err))
	}
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideTokenManager(cfg infra.Config) (*utils.TokenManager, error) {
	return utils.NewTokenManager(cfg.JWTSecret)
}
