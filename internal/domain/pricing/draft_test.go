package pricing

import (
	"errors"
	"testing"

	"freight_pricing/internal/domain/entities"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Road Freight":         "road_freight",
		"  Express -- Road!  ": "express_road",
		"Rail 2":               "rail_2",
		"Sjöfrakt":             "sj_frakt",
		"!!!":                  "mode",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestCreateMode(t *testing.T) {
	cfg := entities.PricingConfiguration{"road_freight": DefaultTariff("Road freight")}

	out, key := CreateMode(cfg, "Road Freight")
	if key != "road_freight_2" {
		t.Fatalf("expected road_freight_2, got %q", key)
	}
	if len(out) != 2 || out[key].Label != "Road Freight" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if len(cfg) != 1 {
		t.Fatalf("input configuration was mutated")
	}

	out, key = CreateMode(out, "Road Freight")
	if key != "road_freight_3" {
		t.Fatalf("expected road_freight_3, got %q", key)
	}

	if _, key := CreateMode(nil, "Ocean"); key != "ocean" {
		t.Fatalf("expected ocean, got %q", key)
	}
}

func TestDuplicateMode(t *testing.T) {
	road := DefaultTariff("Road")
	road.AvailableZones = map[string][]entities.PostalRange{"SE": {{From: "10", To: "19"}}}
	cfg := entities.PricingConfiguration{"road": road}

	out, key, err := DuplicateMode(cfg, "road")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "road_copy" || out[key].Label != "Road (copy)" {
		t.Fatalf("unexpected duplicate %q: %+v", key, out[key])
	}

	// the copy must not share zone storage with the source
	out[key].AvailableZones["SE"][0] = entities.PostalRange{From: "90", To: "99"}
	if cfg["road"].AvailableZones["SE"][0].From != "10" || out["road"].AvailableZones["SE"][0].From != "10" {
		t.Fatalf("duplicate shares state with the source")
	}

	_, key, _ = DuplicateMode(out, "road")
	if key != "road_copy_2" {
		t.Fatalf("expected road_copy_2, got %q", key)
	}

	if _, _, err := DuplicateMode(cfg, "missing"); !errors.Is(err, ErrModeNotFound) {
		t.Fatalf("expected ErrModeNotFound, got %v", err)
	}
}

func TestDeleteMode(t *testing.T) {
	cfg := entities.PricingConfiguration{"road": DefaultTariff("Road"), "rail": DefaultTariff("Rail")}

	out, err := DeleteMode(cfg, "rail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["rail"]; ok || len(out) != 1 {
		t.Fatalf("expected rail removed, got %v", out.Keys())
	}
	if len(cfg) != 2 {
		t.Fatalf("input configuration was mutated")
	}

	if _, err := DeleteMode(cfg, "missing"); !errors.Is(err, ErrModeNotFound) {
		t.Fatalf("expected ErrModeNotFound, got %v", err)
	}
}
