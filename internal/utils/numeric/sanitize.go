package numeric

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// SanitizeNumber converts loosely-typed input into a safe decimal amount.
// It accepts numeric kinds and strings, including locale-formatted strings with
// thousands separators and currency symbols. Non-numeric characters are
// stripped, preserving a leading sign and the first decimal point. Anything
// non-finite or unparseable becomes zero. It never panics.
func SanitizeNumber(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case float32:
		return SanitizeNumber(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case json.Number:
		return sanitizeString(string(v))
	case string:
		return sanitizeString(v)
	default:
		return decimal.Zero
	}
}

func sanitizeString(s string) decimal.Decimal {
	var b strings.Builder
	negative := false
	seenDot := false
	seenDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case r == '.' && !seenDot:
			b.WriteRune(r)
			seenDot = true
		case r == '-' && !seenDigit && b.Len() == 0:
			negative = true
		}
	}
	if !seenDigit {
		return decimal.Zero
	}
	cleaned := b.String()
	if negative {
		cleaned = "-" + cleaned
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
