package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tripnation/internal/catalog"
	dbm "tripnation/internal/models/db_models"
	"tripnation/internal/models/request_models"
	"tripnation/internal/models/response_models"
	"tripnation/pkg/pricing"
	"tripnation/pkg/utils"
)

type PricingConfig struct {
	DefaultFee pricing.Fee
	Insurance  pricing.InsurancePolicy
}

type PricingServiceInterface interface {
	Quote(items pricing.LineItems, fee *pricing.Fee) response_models.QuoteResponse
	QuoteRequest(req request_models.QuoteRequest) response_models.QuoteResponse
	QuoteForm(form request_models.QuoteFormRequest) (response_models.QuoteResponse, error)
	QuotePackage(ctx context.Context, packageID int) (*response_models.PackageQuoteResponse, error)
	Checkout(trip *dbm.Trip, withInsurance bool) response_models.CheckoutResponse
	DefaultFee() pricing.Fee
}

type PricingService struct {
	catalog *catalog.Catalog
	cfg     PricingConfig
	logger  *zap.Logger
}

func NewPricingService(cat *catalog.Catalog, cfg PricingConfig, logger *zap.Logger) PricingServiceInterface {
	return &PricingService{catalog: cat, cfg: cfg, logger: logger}
}

func (s *PricingService) DefaultFee() pricing.Fee { return s.cfg.DefaultFee }

// Quote falls back to the configured fee when fee is nil.
func (s *PricingService) Quote(items pricing.LineItems, fee *pricing.Fee) response_models.QuoteResponse {
	return s.quote("items", items, s.feeOrDefault(fee))
}

func (s *PricingService) QuoteRequest(req request_models.QuoteRequest) response_models.QuoteResponse {
	var fee *pricing.Fee
	if req.ServiceFeePercent != nil {
		f := pricing.FeeFromPercent(*req.ServiceFeePercent)
		fee = &f
	}

	switch {
	case req.Itemized != nil:
		return s.quote("itemized", pricing.FromItemized(*req.Itemized), s.feeOrDefault(fee))
	case req.Extras != nil:
		items, extrasFee := pricing.FromExtras(*req.Extras)
		if req.Extras.ServiceFeePercent == nil {
			extrasFee = s.feeOrDefault(fee)
		}
		return s.quote("extras", items, extrasFee)
	default:
		return s.quote("items", req.LineItems, s.feeOrDefault(fee))
	}
}

// QuoteForm parses each field as typed. Blank fields are absent; an
// unreadable fee percent is rejected rather than guessed.
func (s *PricingService) QuoteForm(form request_models.QuoteFormRequest) (response_models.QuoteResponse, error) {
	items := pricing.LineItems{
		BasePrice:         pricing.ParseCurrency(form.BasePrice),
		TransportCost:     pricing.ParseCurrency(form.TransportCost),
		AccommodationCost: pricing.ParseCurrency(form.AccommodationCost),
		ActivitiesCost:    pricing.ParseCurrency(form.ActivitiesCost),
		OtherCost:         pricing.ParseCurrency(form.OtherCost),
	}

	fee := s.cfg.DefaultFee
	if raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(form.ServiceFeePercent), "%")); raw != "" {
		p, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
		if err != nil || p < 0 || p >= 100 {
			return response_models.QuoteResponse{}, fmt.Errorf("%w: service fee percent %q", utils.ErrInvalidInput, form.ServiceFeePercent)
		}
		fee = pricing.FeeFromPercent(p)
	}
	return s.quote("form", items, fee), nil
}

func (s *PricingService) QuotePackage(_ context.Context, packageID int) (*response_models.PackageQuoteResponse, error) {
	pkg, ok := s.catalog.PackageByID(packageID)
	if !ok {
		return nil, utils.ErrPackageNotFound
	}
	return &response_models.PackageQuoteResponse{
		PackageID: pkg.ID,
		Title:     pkg.Title,
		Price:     pkg.Price,
		Quote:     s.quote("package", pkg.LineItems(), pkg.Fee(s.cfg.DefaultFee)),
	}, nil
}

// Checkout prices a saved trip from its budget. Insurance, when taken, is
// charged on top of the total and kept out of the fee breakdown.
func (s *PricingService) Checkout(trip *dbm.Trip, withInsurance bool) response_models.CheckoutResponse {
	fee := s.cfg.DefaultFee
	if trip.IsPackaged() && trip.PackageID != nil {
		if pkg, ok := s.catalog.PackageByID(*trip.PackageID); ok {
			fee = pkg.Fee(s.cfg.DefaultFee)
		}
	}

	items := pricing.LineItems{BasePrice: pricing.FromNullDecimal(trip.Budget)}
	quote := s.quote("checkout", items, fee)

	insurance := pricing.Absent()
	if withInsurance {
		insurance = pricing.Insurance(items.BasePrice, s.cfg.Insurance)
	}
	due := pricing.Sum(quote.Breakdown.Total, insurance)

	return response_models.CheckoutResponse{
		TripID:             trip.ID.String(),
		Destination:        trip.Destination,
		Quote:              quote,
		WithInsurance:      withInsurance,
		Insurance:          insurance,
		InsuranceFormatted: pricing.FormatCurrency(insurance),
		AmountDue:          due,
		AmountDueFormatted: pricing.FormatCurrency(due),
	}
}

func (s *PricingService) feeOrDefault(fee *pricing.Fee) pricing.Fee {
	if fee == nil {
		return s.cfg.DefaultFee
	}
	return *fee
}

func (s *PricingService) quote(source string, items pricing.LineItems, fee pricing.Fee) response_models.QuoteResponse {
	res := pricing.ComputeTotal(items, fee)
	quotesComputed.WithLabelValues(source).Inc()
	if !res.Total.IsPresent() {
		quotesUnconfirmed.Inc()
		s.logger.Debug("quote has no line items", zap.String("source", source))
	}

	return response_models.QuoteResponse{
		Items:             items,
		Breakdown:         res,
		ServiceFeePercent: fee.String(),
		Formatted: response_models.FormattedBreakdown{
			Subtotal:   pricing.FormatCurrency(res.Subtotal),
			ServiceFee: pricing.FormatCurrency(res.ServiceFee),
			Total:      pricing.FormatCurrency(res.Total),
		},
	}
}
