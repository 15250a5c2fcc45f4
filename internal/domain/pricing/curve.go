package pricing

import (
	"math"

	"freight_pricing/internal/domain/entities"
)

const (
	// DefaultPreviewMinWeight is the lower end of the admin preview chart.
	DefaultPreviewMinWeight = 300.0
	// DefaultPreviewMaxWeight is used when the tariff has no upper bound.
	DefaultPreviewMaxWeight = 25000.0
	// PreviewSteps is the number of intervals; the curve has PreviewSteps+1 points.
	PreviewSteps = 80
)

// PriceForWeight evaluates the piecewise tariff curve. Only P1 and P2 gate the
// segments; P3 is never consulted. Missing parameters count as 0.
func PriceForWeight(t entities.ModeTariff, weightKg float64) float64 {
	switch {
	case weightKg <= t.P1.Or(0):
		return t.PriceP1.Or(0)
	case weightKg <= t.P2.Or(0):
		return t.P2K.Or(0)*weightKg + t.P2M.Or(0)
	default:
		return t.P3K.Or(0)*weightKg + t.P3M.Or(0)
	}
}

// CurvePoint is one sample of the price curve.
type CurvePoint struct {
	WeightKg float64 `json:"weight_kg"`
	TotalEUR float64 `json:"total_eur"`
	PerKgEUR float64 `json:"per_kg_eur"`
}

// CurvePreview is the sampled curve shown in the pricing admin.
type CurvePreview struct {
	StartKg         float64      `json:"start_kg"`
	EndKg           float64      `json:"end_kg"`
	P1              float64      `json:"p1"`
	P2              float64      `json:"p2"`
	P3              float64      `json:"p3"`
	FTLReferenceEUR float64      `json:"ftl_reference_eur"`
	Points          []CurvePoint `json:"points"`
}

// PreviewCurve samples the tariff between its allowed bounds, starting no lower
// than minWeight. Callers without a minimum pass DefaultPreviewMinWeight; a
// minimum of 0 starts at the tariff's own lower bound.
func PreviewCurve(t entities.ModeTariff, minWeight float64) CurvePreview {
	if math.IsNaN(minWeight) || math.IsInf(minWeight, 0) {
		minWeight = 0
	}

	start := math.Max(math.Max(t.MinAllowedKg.Or(0), minWeight), 1)
	end := t.MaxWeightKg.Or(0)
	if end == 0 {
		end = t.MaxAllowedKg.Or(0)
	}
	if end == 0 {
		end = DefaultPreviewMaxWeight
	}
	end = math.Max(end, start+1)

	step := (end - start) / PreviewSteps
	points := make([]CurvePoint, 0, PreviewSteps+1)
	for i := 0; i <= PreviewSteps; i++ {
		w := math.Round(start + step*float64(i))
		price := PriceForWeight(t, w)
		points = append(points, CurvePoint{
			WeightKg: w,
			TotalEUR: price,
			PerKgEUR: price / math.Max(w, 1),
		})
	}

	return CurvePreview{
		StartKg:         start,
		EndKg:           end,
		P1:              t.P1.Or(0),
		P2:              t.P2.Or(0),
		P3:              t.P3.Or(0),
		FTLReferenceEUR: math.Round(PriceForWeight(t, FTLWeightKg)),
		Points:          points,
	}
}
