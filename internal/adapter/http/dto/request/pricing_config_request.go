package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
)

// ModeTariffRequest is a tariff as sent by the admin editor. Zones and balance
// factors may come either as structured maps or as their one-per-line text
// form; text wins when both are present.
type ModeTariffRequest struct {
	entities.ModeTariff
	AvailableZonesText *string
	BalanceFactorsText *string
}

func (r *ModeTariffRequest) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.ModeTariff); err != nil {
		return err
	}
	var text struct {
		AvailableZonesText *string `json:"available_zones_text"`
		BalanceFactorsText *string `json:"balance_factors_text"`
	}
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	r.AvailableZonesText = text.AvailableZonesText
	r.BalanceFactorsText = text.BalanceFactorsText
	return nil
}

// DraftRequest is a whole configuration document keyed by mode.
type DraftRequest map[string]ModeTariffRequest

// ToConfiguration decodes the text fields. Every malformed line is reported,
// prefixed with the mode key and field name.
func (r DraftRequest) ToConfiguration() (entities.PricingConfiguration, error) {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cfg := make(entities.PricingConfiguration, len(r))
	var errs []error

	for _, key := range keys {
		m := r[key]
		t := m.ModeTariff.Clone()
		if m.AvailableZonesText != nil {
			zones, err := pricing.ParseZones(*m.AvailableZonesText)
			if err != nil {
				errs = append(errs, fieldErrors(key, "available_zones_text", err)...)
			}
			t.AvailableZones = zones
		}
		if m.BalanceFactorsText != nil {
			factors, err := pricing.ParseBalanceFactors(*m.BalanceFactorsText)
			if err != nil {
				errs = append(errs, fieldErrors(key, "balance_factors_text", err)...)
			}
			t.BalanceFactors = factors
		}
		cfg[key] = t
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// ErrorMessages flattens a joined decode error into one message per problem.
func ErrorMessages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, ErrorMessages(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

func fieldErrors(key, field string, err error) []error {
	var out []error
	for _, msg := range ErrorMessages(err) {
		out = append(out, fmt.Errorf("%s: %s: %s", key, field, msg))
	}
	return out
}

type ValidateRequest struct {
	Data DraftRequest `json:"data"`
}

type PublishRequest struct {
	Comment string `json:"comment"`
}

// ModeEditRequest carries the draft being edited; Label is used by create.
type ModeEditRequest struct {
	Data  DraftRequest `json:"data"`
	Label string       `json:"label"`
}
