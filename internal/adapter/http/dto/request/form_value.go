package request

import (
	"bytes"
	"encoding/json"

	"freight_pricing/internal/domain/pricing"
)

// FormValue is a goods-form field as typed by the user: a JSON number, a
// string such as "150" or "150kg", or null. It never fails to decode; values
// that are not numbers read as 0.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*v = ""
			return nil
		}
		*v = FormValue(s)
	default:
		*v = FormValue(data)
	}
	return nil
}

// Float reads the leading number, 0 when there is none.
func (v FormValue) Float() float64 {
	return pricing.ParseLenientFloat(string(v))
}

// Int reads the leading integer; ok is false when there is none.
func (v FormValue) Int() (int, bool) {
	return pricing.ParseLenientInt(string(v))
}
