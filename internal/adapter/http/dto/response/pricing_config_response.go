package response

import (
	"time"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase"
)

// ModeTariffResponse is a tariff plus the text form of its zones and balance
// factors, ready for the admin editor.
type ModeTariffResponse struct {
	entities.ModeTariff
	AvailableZonesText string `json:"available_zones_text"`
	BalanceFactorsText string `json:"balance_factors_text"`
}

type ConfigurationResponse map[string]ModeTariffResponse

type PublishedConfigResponse struct {
	Version     int                   `json:"version"`
	Data        ConfigurationResponse `json:"data"`
	Comment     string                `json:"comment,omitempty"`
	PublishID   string                `json:"publish_id,omitempty"`
	PublishedAt *time.Time            `json:"published_at,omitempty"`
}

type DraftConfigResponse struct {
	Data      ConfigurationResponse `json:"data"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type LoadConfigResponse struct {
	Published PublishedConfigResponse `json:"published"`
	Draft     *DraftConfigResponse    `json:"draft"`
}

type SaveDraftResponse struct {
	OK        bool       `json:"ok"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Errors    []string   `json:"errors,omitempty"`
}

type PublishResponse struct {
	OK        bool     `json:"ok"`
	Version   int      `json:"version,omitempty"`
	PublishID string   `json:"publish_id,omitempty"`
	Error     string   `json:"error,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

type ModeEditResponse struct {
	Data ConfigurationResponse `json:"data"`
	Key  string                `json:"key,omitempty"`
}

func FromConfiguration(cfg entities.PricingConfiguration) ConfigurationResponse {
	out := make(ConfigurationResponse, len(cfg))
	for key, t := range cfg {
		out[key] = ModeTariffResponse{
			ModeTariff:         t,
			AvailableZonesText: pricing.FormatZones(t.AvailableZones),
			BalanceFactorsText: pricing.FormatBalanceFactors(t.BalanceFactors),
		}
	}
	return out
}

func FromPublishedConfig(p entities.PublishedConfig) PublishedConfigResponse {
	res := PublishedConfigResponse{
		Version:   p.Version,
		Data:      FromConfiguration(p.Data),
		Comment:   p.Comment,
		PublishID: p.PublishID,
	}
	if !p.PublishedAt.IsZero() {
		at := p.PublishedAt
		res.PublishedAt = &at
	}
	return res
}

func FromLoadedConfig(c usecase.LoadedConfig) LoadConfigResponse {
	res := LoadConfigResponse{Published: FromPublishedConfig(c.Published)}
	if c.Draft != nil {
		res.Draft = &DraftConfigResponse{
			Data:      FromConfiguration(c.Draft.Data),
			UpdatedAt: c.Draft.UpdatedAt,
		}
	}
	return res
}

func FromSavedDraft(d entities.DraftConfig) SaveDraftResponse {
	at := d.UpdatedAt
	return SaveDraftResponse{OK: true, UpdatedAt: &at}
}

func FromPublishResult(p entities.PublishedConfig) PublishResponse {
	return PublishResponse{OK: true, Version: p.Version, PublishID: p.PublishID}
}
