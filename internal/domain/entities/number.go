package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float is a tariff number as edited by admins.
//
// Draft documents are work in progress, so a field may be absent, null, an empty
// string or something that is not a number at all. All of those decode to NaN
// ("missing") and encode back as null, which lets a draft round-trip through
// storage without a missing value silently turning into 0.
type Float float64

// Missing returns the NaN sentinel used for absent tariff values.
func Missing() Float { return Float(math.NaN()) }

// IsSet reports whether f holds a finite value.
func (f Float) IsSet() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Or returns f when set, def otherwise.
func (f Float) Or(def float64) float64 {
	if f.IsSet() {
		return float64(f)
	}
	return def
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.IsSet() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Missing()
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = Missing()
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = Missing()
			return nil
		}
		*f = Float(v)
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = Missing()
		return nil
	}
	*f = Float(v)
	return nil
}
