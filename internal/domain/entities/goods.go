package entities

// GoodsType influences dimension presets only; it is never part of the calculation.
type GoodsType string

const (
	GoodsTypeColli  GoodsType = "Colli"
	GoodsTypePallet GoodsType = "Pallet"
	GoodsTypeFTL    GoodsType = "FTL"
)

// GoodsLine is one line of cargo. Numeric fields are per unit; Quantity is the
// number of identical units on the line.
type GoodsLine struct {
	Type     GoodsType `json:"type"`
	WeightKg float64   `json:"weight"`
	LengthCm float64   `json:"length"`
	WidthCm  float64   `json:"width"`
	HeightCm float64   `json:"height"`
	Quantity int       `json:"quantity"`
}
