package request

import (
	"math"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
)

type GoodsLineRequest struct {
	Type     string    `json:"type"`
	Weight   FormValue `json:"weight"`
	Length   FormValue `json:"length"`
	Width    FormValue `json:"width"`
	Height   FormValue `json:"height"`
	Quantity FormValue `json:"quantity"`
	// ApplyPreset replaces the dimensions with the defaults of Type (e.g. FTL
	// becomes 24000 kg on a 13.6 m trailer) before anything is computed.
	ApplyPreset bool `json:"apply_preset"`
}

// ChargeableWeightRequest is the goods table of the booking form.
type ChargeableWeightRequest struct {
	Goods []GoodsLineRequest `json:"goods"`
	// PricedChargeableWeight is the weight an offer was priced at, if any.
	PricedChargeableWeight float64 `json:"priced_chargeable_weight"`
}

// ToGoodsLine coerces the form values. Negative or garbled numbers read as 0.
func (r GoodsLineRequest) ToGoodsLine() entities.GoodsLine {
	qty, _ := r.Quantity.Int()
	line := entities.GoodsLine{
		Type:     entities.GoodsType(r.Type),
		WeightKg: nonNegative(r.Weight.Float()),
		LengthCm: nonNegative(r.Length.Float()),
		WidthCm:  nonNegative(r.Width.Float()),
		HeightCm: nonNegative(r.Height.Float()),
		Quantity: max(qty, 0),
	}
	if r.ApplyPreset {
		line = pricing.ApplyPreset(line, line.Type)
	}
	return line
}

func (r ChargeableWeightRequest) ResolveGoods() []entities.GoodsLine {
	goods := make([]entities.GoodsLine, 0, len(r.Goods))
	for _, g := range r.Goods {
		goods = append(goods, g.ToGoodsLine())
	}
	return goods
}

func (r ChargeableWeightRequest) ResolvePricedWeight() float64 {
	if math.IsNaN(r.PricedChargeableWeight) || r.PricedChargeableWeight < 0 {
		return 0
	}
	return r.PricedChargeableWeight
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
