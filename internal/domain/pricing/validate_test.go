package pricing

import (
	"math"
	"strings"
	"testing"

	"freight_pricing/internal/domain/entities"
)

func hasError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	t.Run("default tariff is valid", func(t *testing.T) {
		cfg := entities.PricingConfiguration{"road": DefaultTariff("Road")}
		res := Validate(cfg)
		if !res.OK || len(res.Errors) != 0 {
			t.Fatalf("expected ok, got %+v", res)
		}
	})

	t.Run("empty configuration", func(t *testing.T) {
		res := Validate(entities.PricingConfiguration{})
		if res.OK || !hasError(res.Errors, "no transport modes") {
			t.Fatalf("expected empty configuration to fail, got %+v", res)
		}
	})

	t.Run("errors never nil", func(t *testing.T) {
		res := Validate(entities.PricingConfiguration{"road": DefaultTariff("Road")})
		if res.Errors == nil {
			t.Fatalf("expected non-nil errors slice")
		}
	})

	cases := []struct {
		name   string
		mutate func(*entities.ModeTariff)
		want   string
	}{
		{
			name:   "p1 not below p2",
			mutate: func(m *entities.ModeTariff) { m.P1 = 3000 },
			want:   "road: p1 (3000) must be less than p2 (2500)",
		},
		{
			name:   "min above max",
			mutate: func(m *entities.ModeTariff) { m.MinAllowedKg = 30000 },
			want:   "min_allowed_weight_kg (30000) must not exceed max_allowed_weight_kg (25160)",
		},
		{
			name:   "missing required",
			mutate: func(m *entities.ModeTariff) { m.PriceP1 = entities.Missing() },
			want:   "road: price_p1 is required",
		},
		{
			name:   "infinite value",
			mutate: func(m *entities.ModeTariff) { m.P3K = entities.Float(math.Inf(1)) },
			want:   "p3k must be a finite number",
		},
		{
			name:   "non-positive speed",
			mutate: func(m *entities.ModeTariff) { m.TransitSpeedKmpd = 0 },
			want:   "transit_speed_kmpd must be greater than 0",
		},
		{
			name:   "cutoff out of range",
			mutate: func(m *entities.ModeTariff) { m.CutoffHour = 25 },
			want:   "cutoff_hour must be between 0 and 24",
		},
		{
			name:   "negative pickup days",
			mutate: func(m *entities.ModeTariff) { m.ExtraPickupDays = -1 },
			want:   "extra_pickup_days must not be negative",
		},
		{
			name: "bad zone country",
			mutate: func(m *entities.ModeTariff) {
				m.AvailableZones = map[string][]entities.PostalRange{"SWE": {}}
			},
			want: "is not a two-letter country code",
		},
		{
			name: "reversed postal range",
			mutate: func(m *entities.ModeTariff) {
				m.AvailableZones = map[string][]entities.PostalRange{"SE": {{From: "50", To: "10"}}}
			},
			want: "starts after it ends",
		},
		{
			name:   "malformed lane",
			mutate: func(m *entities.ModeTariff) { m.BalanceFactors = map[string]float64{"SEIT": 1.1} },
			want:   "must look like CC-CC",
		},
		{
			name:   "non-positive factor",
			mutate: func(m *entities.ModeTariff) { m.BalanceFactors = map[string]float64{"SE-IT": -1} },
			want:   "SE-IT must be a positive number",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tariff := DefaultTariff("Road")
			tc.mutate(&tariff)
			cfg := entities.PricingConfiguration{"road": tariff}

			res := Validate(cfg)
			if res.OK {
				t.Fatalf("expected validation to fail")
			}
			if !hasError(res.Errors, tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, res.Errors)
			}
		})
	}

	t.Run("optional fields may be missing", func(t *testing.T) {
		tariff := DefaultTariff("Road")
		tariff.KmPriceEUR = entities.Missing()
		tariff.MaxWeightKg = entities.Missing()
		tariff.P3 = entities.Missing()
		tariff.CutoffHour = entities.Missing()
		tariff.ExtraPickupDays = entities.Missing()
		res := Validate(entities.PricingConfiguration{"road": tariff})
		if !res.OK {
			t.Fatalf("expected ok, got %v", res.Errors)
		}
	})

	t.Run("reports every mode", func(t *testing.T) {
		a := DefaultTariff("A")
		a.P1 = 5000
		b := DefaultTariff("B")
		b.P2K = entities.Missing()
		res := Validate(entities.PricingConfiguration{"a": a, "b": b})
		if len(res.Errors) != 2 {
			t.Fatalf("expected 2 errors, got %v", res.Errors)
		}
		if !strings.HasPrefix(res.Errors[0], "a: ") || !strings.HasPrefix(res.Errors[1], "b: ") {
			t.Fatalf("expected errors ordered by mode key, got %v", res.Errors)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		tariff := DefaultTariff("Road")
		tariff.P1 = 5000
		cfg := entities.PricingConfiguration{"road": tariff}
		Validate(cfg)
		if cfg["road"].P1 != 5000 || len(cfg) != 1 {
			t.Fatalf("configuration was mutated: %+v", cfg)
		}
	})
}
