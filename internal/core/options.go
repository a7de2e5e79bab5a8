package core

import "strconv"

// IntOption overwrites *dst with cfg[key] when the value parses and valid
// accepts it. A nil valid accepts every integer.
func IntOption(cfg map[string]string, key string, dst *int, valid func(int) bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	if valid != nil && !valid(parsed) {
		return
	}
	*dst = parsed
}

// FloatOption is IntOption for floating point values.
func FloatOption(cfg map[string]string, key string, dst *float64, valid func(float64) bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	if valid != nil && !valid(parsed) {
		return
	}
	*dst = parsed
}

// BoolOption is IntOption for booleans.
func BoolOption(cfg map[string]string, key string, dst *bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseBool(v); err == nil {
		*dst = parsed
	}
}

// Positive accepts values greater than zero.
func Positive(v int) bool { return v > 0 }

// NonNegative accepts values greater than or equal to zero.
func NonNegative(v int) bool { return v >= 0 }
