package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripnation/cmd/fx/catalog_fx"
	"tripnation/cmd/fx/config_fx"
	"tripnation/cmd/fx/controllers_fx"
	"tripnation/cmd/fx/db_fx"
	"tripnation/cmd/fx/memcache_fx"
	"tripnation/cmd/fx/pricing_fx"
	"tripnation/cmd/fx/quiz_fx"
	"tripnation/cmd/fx/review_fx"
	"tripnation/cmd/fx/trips_fx"
	"tripnation/internal/infra"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		catalog_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		pricing_fx.Module,
		quiz_fx.Module,
		trips_fx.Module,
		review_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
