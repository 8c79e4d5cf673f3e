package activity

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is a lenient numeric answer.
//
// Decoding never fails: numbers and numeric strings are accepted, a leading
// numeric prefix is honored ("40 L" is 40), and anything else (empty, null,
// booleans, text, NaN, infinities, nested values) becomes 0.
type Number float64

// numericPrefix matches the leading decimal literal of a free-text answer.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber converts free text to a Number using the lenient rules.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(v)
	}
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

func finite(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Number(v)
}

// Float returns the value as float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Int truncates the value toward zero.
func (n Number) Int() int {
	return int(math.Trunc(float64(n)))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() == "!!null" || value.ShortTag() == "!!bool" {
		*n = 0
		return nil
	}
	*n = ParseNumber(value.Value)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil //nolint:nilerr // Malformed numeric answers degrade to zero.
	}
	switch x := v.(type) {
	case float64:
		*n = finite(x)
	case string:
		*n = ParseNumber(x)
	default:
		*n = 0
	}
	return nil
}

// Flag is a lenient yes/no answer. Booleans are accepted as-is; the strings
// "sim", "s", "yes", "y", "true", and "1" are true in any case; everything
// else is false.
type Flag bool

// ParseFlag converts a free-text answer to a Flag.
func ParseFlag(s string) Flag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim", "s", "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*f = false
		return nil
	}
	*f = ParseFlag(value.Value)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*f = false
		return nil //nolint:nilerr // Malformed answers degrade to "no".
	}
	switch x := v.(type) {
	case bool:
		*f = Flag(x)
	case string:
		*f = ParseFlag(x)
	case float64:
		*f = x == 1
	default:
		*f = false
	}
	return nil
}
