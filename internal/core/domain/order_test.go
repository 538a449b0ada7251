package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
)

func TestOrder_CreditedAmount(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		amountPaid int64
		want       int64
	}{
		{"amount paid preferred when positive", 100, 60, 60},
		{"zero amount paid falls back to total", 100, 0, 100},
		{"fully paid", 100, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := domain.Order{
				Total:      decimal.NewFromInt(tt.total),
				AmountPaid: decimal.NewFromInt(tt.amountPaid),
			}
			assert.True(t, order.CreditedAmount().Equal(decimal.NewFromInt(tt.want)))
		})
	}
}

func TestPaymentMethod_IsDirect(t *testing.T) {
	assert.True(t, domain.MethodCash.IsDirect())
	assert.True(t, domain.MethodBank.IsDirect())
	assert.True(t, domain.MethodCard.IsDirect())
	assert.False(t, domain.MethodDebt.IsDirect())
	assert.False(t, domain.MethodMixed.IsDirect())
}

func TestTransactionType_Subtracts(t *testing.T) {
	assert.False(t, domain.TxnClientPayment.Subtracts())
	assert.False(t, domain.TxnClientDebt.Subtracts())
	assert.True(t, domain.TxnSupplierPayment.Subtracts())
	assert.True(t, domain.TxnClientReturn.Subtracts())
	assert.True(t, domain.TxnClientRefund.Subtracts())
	assert.True(t, domain.TxnExpense.Subtracts())
}
