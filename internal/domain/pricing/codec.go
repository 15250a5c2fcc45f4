package pricing

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"freight_pricing/internal/domain/entities"
)

// Text formats edited in the pricing admin, one entry per line:
//
//	zones:            SE: 10-19, 20, 30-98     ("SE:" alone offers the whole country)
//	balance factors:  SE-IT=1.15

var (
	countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)
	laneKeyRe     = regexp.MustCompile(`^[A-Z]{2}-[A-Z]{2}$`)
	postalTokenRe = regexp.MustCompile(`^[0-9A-Z]+$`)
)

// LaneKey builds the balance-factor key for an origin/destination pair.
func LaneKey(originCC, destCC string) string {
	return strings.ToUpper(strings.TrimSpace(originCC)) + "-" + strings.ToUpper(strings.TrimSpace(destCC))
}

// ParseZones decodes the zones text. Every malformed line is reported.
func ParseZones(text string) (map[string][]entities.PostalRange, error) {
	zones := map[string][]entities.PostalRange{}
	var errs []error

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		cc, rest, ok := strings.Cut(line, ":")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: expected \"CC: range[,range...]\", got %q", lineNo, line))
			continue
		}
		cc = strings.ToUpper(strings.TrimSpace(cc))
		if !countryCodeRe.MatchString(cc) {
			errs = append(errs, fmt.Errorf("line %d: %q is not a two-letter country code", lineNo, cc))
			continue
		}

		ranges := zones[cc]
		if ranges == nil {
			ranges = []entities.PostalRange{}
		}
		for _, tok := range strings.Split(rest, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			r, err := parsePostalRange(tok)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", lineNo, err))
				continue
			}
			ranges = append(ranges, r)
		}
		zones[cc] = ranges
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return zones, nil
}

func parsePostalRange(tok string) (entities.PostalRange, error) {
	from, to, isRange := strings.Cut(tok, "-")
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if !isRange {
		to = from
	}
	r := entities.PostalRange{From: from, To: to}
	if err := checkPostalRange(r); err != nil {
		return entities.PostalRange{}, err
	}
	return r, nil
}

func checkPostalRange(r entities.PostalRange) error {
	if !postalTokenRe.MatchString(r.From) || !postalTokenRe.MatchString(r.To) {
		return fmt.Errorf("invalid postal range %q", formatRange(r))
	}
	if comparePostal(r.From, r.To) > 0 {
		return fmt.Errorf("postal range %q starts after it ends", formatRange(r))
	}
	return nil
}

// FormatZones encodes zones as text, countries sorted.
func FormatZones(zones map[string][]entities.PostalRange) string {
	countries := make([]string, 0, len(zones))
	for cc := range zones {
		countries = append(countries, cc)
	}
	sort.Strings(countries)

	lines := make([]string, 0, len(countries))
	for _, cc := range countries {
		parts := make([]string, 0, len(zones[cc]))
		for _, r := range zones[cc] {
			parts = append(parts, formatRange(r))
		}
		line := cc + ":"
		if len(parts) > 0 {
			line += " " + strings.Join(parts, ", ")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatRange(r entities.PostalRange) string {
	if r.From == r.To {
		return r.From
	}
	return r.From + "-" + r.To
}

// ParseBalanceFactors decodes the balance-factor text.
func ParseBalanceFactors(text string) (map[string]float64, error) {
	factors := map[string]float64{}
	var errs []error

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: expected \"CC-CC=number\", got %q", lineNo, line))
			continue
		}
		key = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(key), " ", ""))
		if !laneKeyRe.MatchString(key) {
			errs = append(errs, fmt.Errorf("line %d: %q is not a CC-CC lane", lineNo, key))
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			errs = append(errs, fmt.Errorf("line %d: %q is not a number", lineNo, strings.TrimSpace(value)))
			continue
		}
		factors[key] = f
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return factors, nil
}

// FormatBalanceFactors encodes balance factors as text, lanes sorted.
func FormatBalanceFactors(factors map[string]float64) string {
	keys := make([]string, 0, len(factors))
	for k := range factors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+strconv.FormatFloat(factors[k], 'f', -1, 64))
	}
	return strings.Join(lines, "\n")
}

// comparePostal orders two postal prefixes: numerically when both are digits,
// lexically otherwise.
func comparePostal(a, b string) int {
	if isDigits(a) && isDigits(b) {
		ai, errA := strconv.ParseUint(a, 10, 64)
		bi, errB := strconv.ParseUint(b, 10, 64)
		if errA == nil && errB == nil {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
