package pricing

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"freight_pricing/internal/domain/entities"
)

var ErrModeNotFound = errors.New("mode not found")

// DefaultTariff seeds a newly created mode.
func DefaultTariff(label string) entities.ModeTariff {
	return entities.ModeTariff{
		Label:            label,
		Description:      "",
		KmPriceEUR:       1.2,
		CO2PerTonKm:      0.06,
		MinAllowedKg:     1,
		MaxAllowedKg:     25160,
		MaxWeightKg:      25160,
		P1:               300,
		PriceP1:          150,
		P2:               2500,
		P2K:              0.12,
		P2M:              120,
		P3:               25000,
		P3K:              0.07,
		P3M:              250,
		TransitSpeedKmpd: 600,
		CutoffHour:       12,
		ExtraPickupDays:  1,
		AvailableZones:   map[string][]entities.PostalRange{},
		BalanceFactors:   map[string]float64{},
	}
}

// Slugify turns a label into a mode key: lower case, runs of anything that is
// not a letter or digit collapsed into "_".
func Slugify(label string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pendingSep = false
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "mode"
	}
	return b.String()
}

// UniqueKey returns base, or base_2, base_3, ... whichever is free in cfg.
func UniqueKey(cfg entities.PricingConfiguration, base string) string {
	if _, taken := cfg[base]; !taken {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "_" + strconv.Itoa(i)
		if _, taken := cfg[candidate]; !taken {
			return candidate
		}
	}
}

// CreateMode adds a mode with default tariff values under a key derived from
// label. cfg is left untouched; the edited copy is returned.
func CreateMode(cfg entities.PricingConfiguration, label string) (entities.PricingConfiguration, string) {
	out := cfg.Clone()
	key := UniqueKey(out, Slugify(label))
	out[key] = DefaultTariff(strings.TrimSpace(label))
	return out, key
}

// DuplicateMode deep-copies mode key under a new key with a "(copy)" label.
func DuplicateMode(cfg entities.PricingConfiguration, key string) (entities.PricingConfiguration, string, error) {
	src, ok := cfg[key]
	if !ok {
		return nil, "", ErrModeNotFound
	}
	out := cfg.Clone()
	newKey := UniqueKey(out, key+"_copy")
	dup := src.Clone()
	dup.Label = strings.TrimSpace(src.Label + " (copy)")
	out[newKey] = dup
	return out, newKey, nil
}

// DeleteMode removes mode key.
func DeleteMode(cfg entities.PricingConfiguration, key string) (entities.PricingConfiguration, error) {
	if _, ok := cfg[key]; !ok {
		return nil, ErrModeNotFound
	}
	out := cfg.Clone()
	delete(out, key)
	return out, nil
}
