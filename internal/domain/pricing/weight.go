package pricing

import (
	"math"

	"freight_pricing/internal/domain/entities"
)

// VolumetricFactor is the road-freight density convention in kg per m³.
const VolumetricFactor = 335.0

// FTL preset values (13.6 m trailer, 24 t).
const (
	FTLWeightKg  = 24000.0
	FTLLengthCm  = 1360.0
	PalletLength = 120.0
	PalletWidth  = 80.0
)

// VolumetricWeight returns the density-based weight of one unit of the line.
func VolumetricWeight(line entities.GoodsLine) float64 {
	volumeM3 := (line.LengthCm / 100) * (line.WidthCm / 100) * (line.HeightCm / 100)
	return volumeM3 * VolumetricFactor
}

// LineChargeable returns max(actual, volumetric) * quantity for one line.
func LineChargeable(line entities.GoodsLine) float64 {
	return math.Max(line.WeightKg, VolumetricWeight(line)) * float64(line.Quantity)
}

// ChargeableWeight sums the chargeable weight of every line. It enforces no
// upper bound; mode availability is decided by the quote.
func ChargeableWeight(goods []entities.GoodsLine) float64 {
	total := 0.0
	for _, line := range goods {
		total += LineChargeable(line)
	}
	return total
}

// GoodsSummary is what the booking form shows next to the goods table.
type GoodsSummary struct {
	ChargeableWeightKg float64 `json:"chargeable_weight_kg"`
	RoundedChargeable  int     `json:"chargeable_weight"`
	TotalWeightKg      float64 `json:"total_weight_kg"`
	TotalPieces        int     `json:"total_pieces"`
	ExceedsChargeable  bool    `json:"exceeds_chargeable"`
}

// Summarize computes the goods summary. The actual-weight total counts a zero
// quantity as 1 while the chargeable weight counts it as 0.
//
// pricedChargeable is the chargeable weight a quote was priced at; when > 0
// ExceedsChargeable flags goods whose actual weight exceeds it.
func Summarize(goods []entities.GoodsLine, pricedChargeable float64) GoodsSummary {
	s := GoodsSummary{ChargeableWeightKg: ChargeableWeight(goods)}
	s.RoundedChargeable = int(math.Round(s.ChargeableWeightKg))

	for _, line := range goods {
		s.TotalPieces += line.Quantity
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		s.TotalWeightKg += line.WeightKg * float64(qty)
	}

	if pricedChargeable > 0 {
		s.ExceedsChargeable = s.TotalWeightKg > pricedChargeable
	}
	return s
}

// ApplyPreset returns line switched to goodsType with that type's default dimensions.
func ApplyPreset(line entities.GoodsLine, goodsType entities.GoodsType) entities.GoodsLine {
	line.Type = goodsType
	switch goodsType {
	case entities.GoodsTypeFTL:
		line.WeightKg = FTLWeightKg
		line.LengthCm = FTLLengthCm
		line.WidthCm = 0
		line.HeightCm = 0
	case entities.GoodsTypePallet:
		line.LengthCm = PalletLength
		line.WidthCm = PalletWidth
	case entities.GoodsTypeColli:
		line.LengthCm = 0
		line.WidthCm = 0
		line.HeightCm = 0
	}
	return line
}
