package pricing

import "freight_pricing/internal/domain/entities"

type numericField struct {
	name     string
	value    entities.Float
	required bool
}

// numericFields lists the tariff numbers in schema order. Required fields must
// be present for a mode to be publishable or quotable.
func numericFields(t entities.ModeTariff) []numericField {
	return []numericField{
		{"km_price_eur", t.KmPriceEUR, false},
		{"co2_per_ton_km", t.CO2PerTonKm, true},
		{"min_allowed_weight_kg", t.MinAllowedKg, true},
		{"max_allowed_weight_kg", t.MaxAllowedKg, true},
		{"max_weight_kg", t.MaxWeightKg, false},
		{"p1", t.P1, true},
		{"price_p1", t.PriceP1, true},
		{"p2", t.P2, true},
		{"p2k", t.P2K, true},
		{"p2m", t.P2M, true},
		{"p3", t.P3, false},
		{"p3k", t.P3K, true},
		{"p3m", t.P3M, true},
		{"transit_speed_kmpd", t.TransitSpeedKmpd, true},
		{"cutoff_hour", t.CutoffHour, false},
		{"extra_pickup_days", t.ExtraPickupDays, false},
	}
}

// missingRequired returns the names of required fields that are not set.
func missingRequired(t entities.ModeTariff) []string {
	var missing []string
	for _, f := range numericFields(t) {
		if f.required && !f.value.IsSet() {
			missing = append(missing, f.name)
		}
	}
	return missing
}
