package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize turns a raw monetary value from an untrusted payload into a
// non-negative finite amount. Accepts native numbers, numeric strings with
// thousands/decimal separators, or nothing at all; anything unparseable
// comes back as 0.
func Normalize(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return clamp(v)
	case float32:
		return clamp(float64(v))
	case int:
		return clamp(float64(v))
	case int32:
		return clamp(float64(v))
	case int64:
		return clamp(float64(v))
	case json.Number:
		return normalizeString(v.String())
	case string:
		return normalizeString(v)
	default:
		return 0
	}
}

// NormalizeQuantity floors a raw quantity and keeps it at 1 or more.
func NormalizeQuantity(raw any) int {
	qty := int(math.Floor(Normalize(raw)))
	if qty < 1 {
		return 1
	}
	return qty
}

func normalizeString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		// "1,200.50" — comma is a thousands separator
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case hasComma:
		// "1200,50" — comma is the decimal separator
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return clamp(parsed)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
