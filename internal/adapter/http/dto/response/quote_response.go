package response

import (
	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
)

type ModeQuoteResponse struct {
	Available          bool    `json:"available"`
	Reason             string  `json:"reason,omitempty"`
	Label              string  `json:"label,omitempty"`
	Description        string  `json:"description"`
	TotalPriceEUR      float64 `json:"total_price_eur"`
	EarliestPickupDate string  `json:"earliest_pickup_date,omitempty"`
	TransitTimeDays    [2]int  `json:"transit_time_days"`
	CO2EmissionsGrams  float64 `json:"co2_emissions_grams"`
	DistanceKm         float64 `json:"distance_km"`
	BalanceFactor      float64 `json:"balance_factor,omitempty"`
}

func FromQuotes(quotes map[string]entities.ModeQuote) map[string]ModeQuoteResponse {
	out := make(map[string]ModeQuoteResponse, len(quotes))
	for mode, q := range quotes {
		out[mode] = ModeQuoteResponse{
			Available:          q.Available,
			Reason:             q.Reason,
			Label:              q.Label,
			Description:        q.Description,
			TotalPriceEUR:      q.TotalPriceEUR,
			EarliestPickupDate: q.EarliestPickupDate,
			TransitTimeDays:    q.TransitTimeDays,
			CO2EmissionsGrams:  q.CO2EmissionsGrams,
			DistanceKm:         q.DistanceKm,
			BalanceFactor:      q.BalanceFactor,
		}
	}
	return out
}

type GoodsSummaryResponse struct {
	ChargeableWeightKg float64 `json:"chargeable_weight_kg"`
	ChargeableWeight   int     `json:"chargeable_weight"`
	TotalWeightKg      float64 `json:"total_weight_kg"`
	TotalPieces        int     `json:"total_pieces"`
	ExceedsChargeable  bool    `json:"exceeds_chargeable"`
}

func FromGoodsSummary(s pricing.GoodsSummary) GoodsSummaryResponse {
	return GoodsSummaryResponse{
		ChargeableWeightKg: s.ChargeableWeightKg,
		ChargeableWeight:   s.RoundedChargeable,
		TotalWeightKg:      s.TotalWeightKg,
		TotalPieces:        s.TotalPieces,
		ExceedsChargeable:  s.ExceedsChargeable,
	}
}
