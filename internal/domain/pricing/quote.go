package pricing

import (
	"math"
	"strings"
	"time"

	"freight_pricing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Reasons reported on unavailable modes.
const (
	ReasonIncompleteTariff = "incomplete_tariff"
	ReasonWeightOutOfRange = "weight_out_of_range"
	ReasonZoneNotServed    = "zone_not_served"
	ReasonInvalidFactor    = "invalid_balance_factor"
)

// QuoteInput is everything a single mode needs besides its tariff.
type QuoteInput struct {
	OriginCountry      string
	OriginPostalPrefix string
	DestCountry        string
	DestPostalPrefix   string
	DistanceKm         float64
	ChargeableWeightKg float64
	Now                time.Time // local time at the pickup site
}

// QuoteMode prices one mode. It never fails: problems surface as
// Available=false with a Reason.
func QuoteMode(mode string, t entities.ModeTariff, in QuoteInput) entities.ModeQuote {
	q := entities.ModeQuote{
		Mode:        mode,
		Label:       t.Label,
		Description: t.Description,
		DistanceKm:  in.DistanceKm,
	}

	if len(missingRequired(t)) > 0 || !(float64(t.TransitSpeedKmpd) > 0) {
		q.Reason = ReasonIncompleteTariff
		return q
	}

	w := in.ChargeableWeightKg
	if w < t.MinAllowedKg.Or(0) || w > float64(t.MaxAllowedKg) {
		q.Reason = ReasonWeightOutOfRange
		return q
	}

	if !ZoneAllows(t.AvailableZones, in.OriginCountry, in.OriginPostalPrefix) ||
		!ZoneAllows(t.AvailableZones, in.DestCountry, in.DestPostalPrefix) {
		q.Reason = ReasonZoneNotServed
		return q
	}

	factor := 1.0
	if f, ok := t.BalanceFactors[LaneKey(in.OriginCountry, in.DestCountry)]; ok {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			q.Reason = ReasonInvalidFactor
			return q
		}
		factor = f
	}

	curve := PriceForWeight(t, w)
	total := decimal.NewFromFloat(curve).Mul(decimal.NewFromFloat(factor)).Round(2)

	q.Available = true
	q.CurvePriceEUR = curve
	q.BalanceFactor = factor
	q.TotalPriceEUR = total.InexactFloat64()
	q.CO2EmissionsGrams = CO2Grams(w, in.DistanceKm, float64(t.CO2PerTonKm))

	afterCutoff := isAfterCutoff(in.Now, t.CutoffHour)
	extra := int(t.ExtraPickupDays.Or(0))
	days := TransitDays(in.DistanceKm, float64(t.TransitSpeedKmpd), extra, afterCutoff)
	q.TransitTimeDays = [2]int{days, days + 1}
	q.EarliestPickupDate = EarliestPickup(in.Now, extra, afterCutoff).Format(time.DateOnly)

	return q
}

// QuoteAll prices every mode of cfg. One bad mode never affects the others.
func QuoteAll(cfg entities.PricingConfiguration, in QuoteInput) map[string]entities.ModeQuote {
	out := make(map[string]entities.ModeQuote, len(cfg))
	for mode, t := range cfg {
		out[mode] = QuoteMode(mode, t, in)
	}
	return out
}

// CO2Grams returns the emission estimate in grams; callers divide by 1000 to show kg.
func CO2Grams(weightKg, distanceKm, co2PerTonKm float64) float64 {
	return math.Round(weightKg * (distanceKm / 1000) * co2PerTonKm * 1000)
}

// TransitDays is ceil(distance/speed) plus pickup lead time, plus one day when
// the booking misses the pickup cutoff.
func TransitDays(distanceKm, speedKmpd float64, extraPickupDays int, afterCutoff bool) int {
	days := int(math.Ceil(distanceKm/speedKmpd)) + extraPickupDays
	if afterCutoff {
		days++
	}
	return days
}

// EarliestPickup returns the first weekday on which the goods can be collected.
func EarliestPickup(now time.Time, extraPickupDays int, afterCutoff bool) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if afterCutoff {
		day = day.AddDate(0, 0, 1)
	}
	day = day.AddDate(0, 0, extraPickupDays)
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func isAfterCutoff(now time.Time, cutoff entities.Float) bool {
	if !cutoff.IsSet() {
		return false
	}
	h := float64(now.Hour()) + float64(now.Minute())/60
	return h >= float64(cutoff)
}

// ZoneAllows reports whether a mode with the given zones serves the country and
// postal prefix. No zones at all means the mode is offered everywhere; a
// country with no ranges is served entirely.
func ZoneAllows(zones map[string][]entities.PostalRange, country, postalPrefix string) bool {
	if len(zones) == 0 {
		return true
	}
	ranges, ok := zones[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return false
	}
	if len(ranges) == 0 {
		return true
	}

	prefix := strings.ToUpper(strings.TrimSpace(postalPrefix))
	for _, r := range ranges {
		if comparePostal(cutPrefix(prefix, len(r.From)), r.From) >= 0 &&
			comparePostal(cutPrefix(prefix, len(r.To)), r.To) <= 0 {
			return true
		}
	}
	return false
}

// cutPrefix shortens a postal prefix to the precision of a range bound.
func cutPrefix(prefix string, n int) string {
	if len(prefix) > n {
		return prefix[:n]
	}
	return prefix
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(a, b entities.Coordinate) float64 {
	const earthRadiusKm = 6371.0
	rad := math.Pi / 180

	dLat := (b.Lat() - a.Lat()) * rad
	dLng := (b.Lng() - a.Lng()) * rad
	lat1 := a.Lat() * rad
	lat2 := b.Lat() * rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
