package memcache_fx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripnation/internal/infra"
	"tripnation/internal/repositories"
	mem "tripnation/pkg/memcache"
)

const sweepInterval = time.Minute

var Module = fx.Provide(provideQuizSessionRepository)

// provideQuizSessionRepository picks the session backend from
// QUIZ_SESSION_STORE.
func provideQuizSessionRepository(lc fx.Lifecycle, cfg infra.Config, logger *zap.Logger) (repositories.QuizSessionRepository, error) {
	switch cfg.QuizSessionStore {
	case "redis":
		client := infra.NewRedis(cfg)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
				}
				logger.Info("quiz sessions stored in redis", zap.String("addr", cfg.RedisAddr))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return repositories.NewRedisQuizSessionRepository(client, cfg.QuizSessionTTL), nil

	case "memory", "":
		store := mem.NewQuizSessions()
		done := make(chan struct{})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go sweep(store, done, logger)
				logger.Info("quiz sessions stored in memory", zap.Duration("ttl", cfg.QuizSessionTTL))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				close(done)
				return nil
			},
		})
		return repositories.NewMemoryQuizSessionRepository(store, cfg.QuizSessionTTL), nil

	default:
		return nil, fmt.Errorf("unknown QUIZ_SESSION_STORE %q (want memory or redis)", cfg.QuizSessionStore)
	}
}

func sweep(store *mem.QuizSessions, done <-chan struct{}, logger *zap.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("expired quiz sessions removed", zap.Int("count", n))
			}
		}
	}
}
