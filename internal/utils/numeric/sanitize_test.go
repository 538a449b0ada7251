package numeric_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dukkan-app/ledger_core/internal/utils/numeric"
)

func TestSanitizeNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain float", 12.5, "12.5"},
		{"plain int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"decimal passthrough", decimal.NewFromFloat(3.14), "3.14"},
		{"numeric string", "1234.56", "1234.56"},
		{"currency symbol", "$1,234.56", "1234.56"},
		{"locale thousands and comma", "1 234,56", "123456"},
		{"lbp suffix", "150000 LBP", "150000"},
		{"negative with symbol", "-$15.00", "-15"},
		{"sign after junk", "LL -250", "-250"},
		{"second decimal point dropped", "1.2.3", "1.23"},
		{"garbage", "garbage", "0"},
		{"empty string", "", "0"},
		{"only separators", "-.,", "0"},
		{"nil", nil, "0"},
		{"nan", math.NaN(), "0"},
		{"positive infinity", math.Inf(1), "0"},
		{"negative infinity", math.Inf(-1), "0"},
		{"bool is not numeric", true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numeric.SanitizeNumber(tt.input)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, got.Equal(want), "want %s got %s", want, got)
		})
	}
}

func TestSanitizeNumberNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = numeric.SanitizeNumber(struct{ X int }{1})
		_ = numeric.SanitizeNumber([]string{"1"})
		_ = numeric.SanitizeNumber(map[string]any{"a": 1})
	})
}
