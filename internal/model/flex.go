package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString accepts a JSON string or number and always marshals back as a string.
// Model output is inconsistent about quoting values like "165" or 165.
type FlexString struct {
	Value string
}

// NewFlexString wraps s
func NewFlexString(s string) FlexString {
	return FlexString{Value: s}
}

func (f FlexString) String() string {
	return f.Value
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		f.Value = ""
		return nil
	}

	// Try to unmarshal as string first
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		f.Value = str
		return nil
	}

	// Fall back to a number, keeping integers free of a decimal point
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = strconv.FormatFloat(num, 'f', -1, 64)
		return nil
	}

	return fmt.Errorf("invalid value %s: expected string or number", string(data))
}
