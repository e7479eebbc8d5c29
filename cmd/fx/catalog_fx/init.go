package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripnation/internal/catalog"
	"tripnation/internal/infra"
)

var Module = fx.Provide(provideCatalog)

func provideCatalog(cfg infra.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.String("file", cfg.CatalogFile),
		zap.Int("packages", len(cat.Packages())),
		zap.Int("guides", len(cat.Guides())),
		zap.Int("questions", len(cat.Questions())))
	return cat, nil
}
