package types

import (
	"encoding/json"
	"errors"
	"strconv"
)

// IntOrString accepts a JSON number or a numeric string. Wire records
// from the hosted backend sometimes serialize numeric columns as
// strings, so request DTOs use this instead of a bare int.
type IntOrString int

func (i *IntOrString) UnmarshalJSON(b []byte) error {
	var asInt int
	if err := json.Unmarshal(b, &asInt); err == nil {
		*i = IntOrString(asInt)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		parsed, err := strconv.Atoi(asStr)
		if err != nil {
			return err
		}
		*i = IntOrString(parsed)
		return nil
	}

	return errors.New("invalid int or string")
}

// FloatOrString is the decimal counterpart of IntOrString, used for
// prices and delivery fees.
type FloatOrString float64

func (f *FloatOrString) UnmarshalJSON(b []byte) error {
	var asFloat float64
	if err := json.Unmarshal(b, &asFloat); err == nil {
		*f = FloatOrString(asFloat)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		parsed, err := strconv.ParseFloat(asStr, 64)
		if err != nil {
			return err
		}
		*f = FloatOrString(parsed)
		return nil
	}

	return errors.New("invalid float or string")
}
