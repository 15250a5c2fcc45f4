package request

import (
	"strings"

	"freight_pricing/internal/domain/entities"
)

type CalculateRequest struct {
	PickupCoordinate     [2]float64 `json:"pickup_coordinate"`
	PickupCountry        string     `json:"pickup_country" binding:"required"`
	PickupPostalPrefix   string     `json:"pickup_postal_prefix"`
	DeliveryCoordinate   [2]float64 `json:"delivery_coordinate"`
	DeliveryCountry      string     `json:"delivery_country" binding:"required"`
	DeliveryPostalPrefix string     `json:"delivery_postal_prefix"`
	ChargeableWeight     int        `json:"chargeable_weight"`
}

func (r CalculateRequest) ToQuoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		PickupCoordinate:     entities.Coordinate(r.PickupCoordinate),
		PickupCountry:        strings.ToUpper(strings.TrimSpace(r.PickupCountry)),
		PickupPostalPrefix:   strings.ToUpper(strings.TrimSpace(r.PickupPostalPrefix)),
		DeliveryCoordinate:   entities.Coordinate(r.DeliveryCoordinate),
		DeliveryCountry:      strings.ToUpper(strings.TrimSpace(r.DeliveryCountry)),
		DeliveryPostalPrefix: strings.ToUpper(strings.TrimSpace(r.DeliveryPostalPrefix)),
		ChargeableWeightKg:   float64(r.ChargeableWeight),
	}
}
