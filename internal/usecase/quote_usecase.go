package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrConfigNotPublished  = errors.New("no published pricing configuration")
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)

// QuoteSettings are the deployment-specific inputs of a quote.
type QuoteSettings struct {
	// Location is the pickup-site time zone used for the cutoff rule.
	Location *time.Location
	// RoadDistanceFactor turns great-circle distance into road distance.
	RoadDistanceFactor float64
}

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

// IQuoteUseCase prices shipments against the published configuration.
type IQuoteUseCase interface {
	Calculate(ctx context.Context, req entities.QuoteRequest) (map[string]entities.ModeQuote, error)
	Summarize(goods []entities.GoodsLine, pricedChargeable float64) pricing.GoodsSummary
}

type QuoteUseCase struct {
	published publishedSource
	settings  QuoteSettings
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IPricingConfigRepository, cache interfaces.IPublishedConfigCache, settings QuoteSettings, logger *zap.Logger) *QuoteUseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.RoadDistanceFactor <= 0 {
		settings.RoadDistanceFactor = 1
	}
	return &QuoteUseCase{
		published: publishedSource{repo: repo, cache: cache, logger: logger},
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

// Calculate returns one result per published mode. Modes that cannot serve the
// shipment come back with Available=false; only request or storage problems
// are errors.
func (u *QuoteUseCase) Calculate(ctx context.Context, req entities.QuoteRequest) (map[string]entities.ModeQuote, error) {
	if err := checkQuoteRequest(req); err != nil {
		return nil, err
	}

	published, err := u.published.load(ctx)
	if err != nil {
		return nil, err
	}
	if published.Version == 0 {
		return nil, ErrConfigNotPublished
	}

	distance := pricing.HaversineKm(req.PickupCoordinate, req.DeliveryCoordinate) * u.settings.RoadDistanceFactor
	in := pricing.QuoteInput{
		OriginCountry:      req.PickupCountry,
		OriginPostalPrefix: req.PickupPostalPrefix,
		DestCountry:        req.DeliveryCountry,
		DestPostalPrefix:   req.DeliveryPostalPrefix,
		DistanceKm:         math.Round(distance*10) / 10,
		ChargeableWeightKg: req.ChargeableWeightKg,
		Now:                u.now().In(u.settings.Location),
	}

	quotes := pricing.QuoteAll(published.Data, in)

	available := 0
	for _, q := range quotes {
		if q.Available {
			available++
		}
	}
	u.logger.Info("[quote][usecase] calculated",
		zap.Int("version", published.Version),
		zap.String("lane", pricing.LaneKey(req.PickupCountry, req.DeliveryCountry)),
		zap.Float64("chargeable_weight_kg", req.ChargeableWeightKg),
		zap.Float64("distance_km", in.DistanceKm),
		zap.Int("modes", len(quotes)),
		zap.Int("available", available))

	return quotes, nil
}

func (u *QuoteUseCase) Summarize(goods []entities.GoodsLine, pricedChargeable float64) pricing.GoodsSummary {
	return pricing.Summarize(goods, pricedChargeable)
}

func checkQuoteRequest(req entities.QuoteRequest) error {
	if len(strings.TrimSpace(req.PickupCountry)) != 2 || len(strings.TrimSpace(req.DeliveryCountry)) != 2 {
		return ErrInvalidQuoteRequest
	}
	if math.IsNaN(req.ChargeableWeightKg) || req.ChargeableWeightKg < 0 {
		return ErrInvalidQuoteRequest
	}
	for _, c := range []entities.Coordinate{req.PickupCoordinate, req.DeliveryCoordinate} {
		if math.Abs(c.Lat()) > 90 || math.Abs(c.Lng()) > 180 {
			return ErrInvalidQuoteRequest
		}
	}
	return nil
}
