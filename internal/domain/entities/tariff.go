package entities

import (
	"encoding/json"
	"sort"
	"time"
)

// Well-known transport mode keys. Admins may add more; these only seed documentation and tests.
const (
	ModeRoadFreight      = "road_freight"
	ModeExpressRoad      = "express_road"
	ModeOceanFreight     = "ocean_freight"
	ModeIntermodalRail   = "intermodal_rail"
	ModeConventionalRail = "conventional_rail"
)

// PostalRange is an inclusive range of postal-code prefixes, e.g. 10-19.
// A single prefix has From == To.
type PostalRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ModeTariff is the pricing record for one transport mode.
//
// Curve:
//   - weight <= P1: PriceP1 (flat minimum charge)
//   - weight <= P2: P2K*weight + P2M
//   - otherwise:    P3K*weight + P3M
//
// P3 is informational only and never gates segment selection.
type ModeTariff struct {
	Label       string `json:"label"`
	Description string `json:"description"`

	KmPriceEUR   Float `json:"km_price_eur"`
	CO2PerTonKm  Float `json:"co2_per_ton_km"`
	MinAllowedKg Float `json:"min_allowed_weight_kg"`
	MaxAllowedKg Float `json:"max_allowed_weight_kg"`
	MaxWeightKg  Float `json:"max_weight_kg"`

	P1      Float `json:"p1"`
	PriceP1 Float `json:"price_p1"`
	P2      Float `json:"p2"`
	P2K     Float `json:"p2k"`
	P2M     Float `json:"p2m"`
	P3      Float `json:"p3"`
	P3K     Float `json:"p3k"`
	P3M     Float `json:"p3m"`

	TransitSpeedKmpd Float `json:"transit_speed_kmpd"`
	CutoffHour       Float `json:"cutoff_hour"`
	ExtraPickupDays  Float `json:"extra_pickup_days"`

	AvailableZones map[string][]PostalRange `json:"available_zones,omitempty"`
	BalanceFactors map[string]float64       `json:"balance_factors,omitempty"`
}

// UnmarshalJSON starts every numeric field as missing so that absent keys are
// distinguishable from an explicit 0.
func (t *ModeTariff) UnmarshalJSON(data []byte) error {
	type plain ModeTariff
	m := Missing()
	p := plain{
		KmPriceEUR: m, CO2PerTonKm: m, MinAllowedKg: m, MaxAllowedKg: m, MaxWeightKg: m,
		P1: m, PriceP1: m, P2: m, P2K: m, P2M: m, P3: m, P3K: m, P3M: m,
		TransitSpeedKmpd: m, CutoffHour: m, ExtraPickupDays: m,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = ModeTariff(p)
	return nil
}

// Clone returns a deep copy.
func (t ModeTariff) Clone() ModeTariff {
	out := t
	if t.AvailableZones != nil {
		out.AvailableZones = make(map[string][]PostalRange, len(t.AvailableZones))
		for cc, ranges := range t.AvailableZones {
			out.AvailableZones[cc] = append([]PostalRange(nil), ranges...)
		}
	}
	if t.BalanceFactors != nil {
		out.BalanceFactors = make(map[string]float64, len(t.BalanceFactors))
		for k, v := range t.BalanceFactors {
			out.BalanceFactors[k] = v
		}
	}
	return out
}

// PricingConfiguration maps mode key to tariff.
type PricingConfiguration map[string]ModeTariff

// Clone returns a deep copy. A nil configuration clones to an empty one.
func (c PricingConfiguration) Clone() PricingConfiguration {
	out := make(PricingConfiguration, len(c))
	for k, t := range c {
		out[k] = t.Clone()
	}
	return out
}

// Keys returns the mode keys in sorted order.
func (c PricingConfiguration) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PublishedConfig is an immutable, versioned snapshot that quotes are priced from.
//
// Version 0 with empty Data means nothing has been published yet.
type PublishedConfig struct {
	Version     int                  `json:"version"`
	Data        PricingConfiguration `json:"data"`
	Comment     string               `json:"comment,omitempty"`
	PublishID   string               `json:"publish_id,omitempty"`
	PublishedAt time.Time            `json:"published_at,omitempty"`
}

// DraftConfig is the single mutable working copy (last write wins).
type DraftConfig struct {
	Data      PricingConfiguration `json:"data"`
	UpdatedAt time.Time            `json:"updated_at"`
}
