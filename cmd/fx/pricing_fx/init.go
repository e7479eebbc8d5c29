package pricing_fx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripnation/internal/catalog"
	"tripnation/internal/infra"
	"tripnation/internal/services"
	"tripnation/pkg/pricing"
)

var Module = fx.Provide(providePricingService)

func providePricingService(cat *catalog.Catalog, cfg infra.Config, logger *zap.Logger) (services.PricingServiceInterface, error) {
	if cfg.ServiceFeePercent < 0 || cfg.ServiceFeePercent >= 100 {
		return nil, fmt.Errorf("SERVICE_FEE_PERCENT must be in [0, 100), got %v", cfg.ServiceFeePercent)
	}
	return services.NewPricingService(cat, services.PricingConfig{
		DefaultFee: pricing.FeeFromPercent(cfg.ServiceFeePercent),
		Insurance:  pricing.DefaultInsurance,
	}, logger), nil
}
