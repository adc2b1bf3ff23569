package service

import (
	"math"
	"strconv"
	"strings"

	"finance-toolkit/domain"
)

// ClampField keeps v inside the field's declared range, the way a bounded
// number input would. NaN falls back to the default.
func ClampField(f domain.Field, v float64) float64 {
	if math.IsNaN(v) {
		return f.Default
	}
	if f.Integer {
		v = math.Round(v)
	}
	if !f.Bounded {
		if math.IsInf(v, 0) {
			return f.Default
		}
		return v
	}
	if v < f.Min {
		v = f.Min
	}
	if !f.NoMax && v > f.Max {
		v = f.Max
	}
	if math.IsInf(v, 0) {
		return f.Default
	}
	return v
}

// ParseField reads a raw form value. Empty or malformed input yields the
// default; anything else is clamped.
func ParseField(f domain.Field, raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return f.Default
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return f.Default
	}
	return ClampField(f, v)
}

// ResolveInputs produces a complete input record for fields: values present
// in raw are clamped, absent ones take their default.
func ResolveInputs(fields []domain.Field, raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(fields))
	for _, f := range fields {
		v, ok := raw[f.Name]
		if !ok {
			out[f.Name] = f.Default
			continue
		}
		out[f.Name] = ClampField(f, v)
	}
	return out
}
