package pricing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"freight_pricing/internal/domain/entities"
)

// ValidationResult is the outcome of Validate. Errors is never nil.
type ValidationResult struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

// Validate checks a candidate configuration. It never mutates cfg.
func Validate(cfg entities.PricingConfiguration) ValidationResult {
	errs := []string{}
	if len(cfg) == 0 {
		errs = append(errs, "configuration has no transport modes")
	}

	for _, key := range cfg.Keys() {
		errs = append(errs, validateMode(key, cfg[key])...)
	}

	return ValidationResult{OK: len(errs) == 0, Errors: errs}
}

func validateMode(key string, t entities.ModeTariff) []string {
	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, key+": "+fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(key) == "" {
		errs = append(errs, "mode key must not be empty")
	}

	for _, f := range numericFields(t) {
		v := float64(f.value)
		switch {
		case math.IsInf(v, 0):
			add("%s must be a finite number", f.name)
		case math.IsNaN(v) && f.required:
			add("%s is required", f.name)
		}
	}

	// Ordering checks only make sense when both sides are present.
	if t.P1.IsSet() && t.P2.IsSet() && !(float64(t.P1) < float64(t.P2)) {
		add("p1 (%s) must be less than p2 (%s)", fmtNum(t.P1), fmtNum(t.P2))
	}
	if t.MinAllowedKg.IsSet() && t.MaxAllowedKg.IsSet() && float64(t.MinAllowedKg) > float64(t.MaxAllowedKg) {
		add("min_allowed_weight_kg (%s) must not exceed max_allowed_weight_kg (%s)", fmtNum(t.MinAllowedKg), fmtNum(t.MaxAllowedKg))
	}
	if t.MinAllowedKg.IsSet() && float64(t.MinAllowedKg) < 0 {
		add("min_allowed_weight_kg must not be negative")
	}
	if t.TransitSpeedKmpd.IsSet() && float64(t.TransitSpeedKmpd) <= 0 {
		add("transit_speed_kmpd must be greater than 0")
	}
	if t.CutoffHour.IsSet() {
		if h := float64(t.CutoffHour); h < 0 || h > 24 {
			add("cutoff_hour must be between 0 and 24")
		}
	}
	if t.ExtraPickupDays.IsSet() && float64(t.ExtraPickupDays) < 0 {
		add("extra_pickup_days must not be negative")
	}

	for _, cc := range sortedKeys(t.AvailableZones) {
		if !countryCodeRe.MatchString(cc) {
			add("available_zones: %q is not a two-letter country code", cc)
			continue
		}
		for _, r := range t.AvailableZones[cc] {
			if err := checkPostalRange(r); err != nil {
				add("available_zones: %s: %v", cc, err)
			}
		}
	}

	for _, lane := range sortedKeys(t.BalanceFactors) {
		if !laneKeyRe.MatchString(lane) {
			add("balance_factors: %q must look like CC-CC", lane)
			continue
		}
		if f := t.BalanceFactors[lane]; math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			add("balance_factors: %s must be a positive number", lane)
		}
	}

	return errs
}

func fmtNum(f entities.Float) string {
	return fmt.Sprintf("%g", float64(f))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
