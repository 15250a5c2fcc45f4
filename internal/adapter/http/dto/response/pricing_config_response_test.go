package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase"
)

func TestFromLoadedConfig(t *testing.T) {
	road := pricing.DefaultTariff("Road")
	road.AvailableZones = map[string][]entities.PostalRange{"SE": {{From: "10", To: "19"}}}
	road.BalanceFactors = map[string]float64{"SE-IT": 1.15}
	road.P3 = entities.Missing()

	loaded := usecase.LoadedConfig{
		Published: entities.PublishedConfig{Version: 2, Data: entities.PricingConfiguration{"road": road}},
	}
	res := FromLoadedConfig(loaded)

	if res.Draft != nil {
		t.Fatalf("expected nil draft")
	}
	if res.Published.PublishedAt != nil {
		t.Fatalf("expected no timestamp for zero time")
	}
	got := res.Published.Data["road"]
	if got.AvailableZonesText != "SE: 10-19" || got.BalanceFactorsText != "SE-IT=1.15" {
		t.Fatalf("unexpected text fields: %+v", got)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"draft":null`, `"version":2`, `"p3":null`, `"label":"Road"`, `"available_zones_text":"SE: 10-19"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}

	loaded.Draft = &entities.DraftConfig{Data: entities.PricingConfiguration{}, UpdatedAt: time.Now()}
	if res := FromLoadedConfig(loaded); res.Draft == nil || res.Draft.Data == nil {
		t.Fatalf("expected draft in response")
	}
}

func TestFromQuotes(t *testing.T) {
	quotes := map[string]entities.ModeQuote{
		"road": {Mode: "road", Available: true, TotalPriceEUR: 240, TransitTimeDays: [2]int{2, 3}, Description: "Groupage"},
		"rail": {Mode: "rail", Reason: pricing.ReasonZoneNotServed},
	}
	out := FromQuotes(quotes)
	if !out["road"].Available || out["road"].TotalPriceEUR != 240 || out["road"].Description != "Groupage" {
		t.Fatalf("unexpected road response: %+v", out["road"])
	}
	if out["rail"].Available || out["rail"].Reason != pricing.ReasonZoneNotServed {
		t.Fatalf("unexpected rail response: %+v", out["rail"])
	}
}
