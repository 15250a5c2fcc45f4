package entities

// Coordinate is a [lat, lng] pair as produced by the geocoding service.
type Coordinate [2]float64

func (c Coordinate) Lat() float64 { return c[0] }
func (c Coordinate) Lng() float64 { return c[1] }

// QuoteRequest is the input of the calculate operation.
type QuoteRequest struct {
	PickupCoordinate     Coordinate
	PickupCountry        string
	PickupPostalPrefix   string
	DeliveryCoordinate   Coordinate
	DeliveryCountry      string
	DeliveryPostalPrefix string
	ChargeableWeightKg   float64
}

// ModeQuote is the result for one transport mode. Unavailable modes carry
// Available=false and a Reason instead of prices.
type ModeQuote struct {
	Mode               string  `json:"mode"`
	Available          bool    `json:"available"`
	Reason             string  `json:"reason,omitempty"`
	Label              string  `json:"label,omitempty"`
	Description        string  `json:"description,omitempty"`
	TotalPriceEUR      float64 `json:"total_price_eur"`
	CurvePriceEUR      float64 `json:"curve_price_eur"`
	BalanceFactor      float64 `json:"balance_factor"`
	EarliestPickupDate string  `json:"earliest_pickup_date,omitempty"`
	TransitTimeDays    [2]int  `json:"transit_time_days"`
	CO2EmissionsGrams  float64 `json:"co2_emissions_grams"`
	DistanceKm         float64 `json:"distance_km"`
}
