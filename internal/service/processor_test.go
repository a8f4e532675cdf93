package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/domain"
)

func TestProcessorFor(t *testing.T) {
	tests := []struct {
		method domain.PaymentMethod
		want   string
	}{
		{domain.PaymentBankTransfer, "Bank transfer: Amount 100 for Utilities"},
		{domain.PaymentMobileMoney, "Mobile money: Amount 100 for Utilities"},
		{domain.PaymentCryptoWallet, "Crypto wallet: Amount 100 for Utilities"},
	}

	tx := domain.NewTransaction(5, decimal.NewFromInt(100), "Utilities")
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			p, err := ProcessorFor(tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.method, p.Method())

			receipt, err := p.Process(tx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, receipt.Description)
			assert.Equal(t, 5, receipt.TransactionID)
			assert.Equal(t, tt.method, receipt.Method)
			assert.NotEqual(t, uuid.Nil, receipt.Reference)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ProcessorFor("barter")
		assert.Error(t, err)
	})
}

func TestProcessorRejectsNonPositive(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		_, err := BankTransferProcessor{}.Process(domain.NewTransaction(1, amount, "Refund"))
		assert.True(t, domain.IsKind(err, domain.KindInvalidValue), "amount %s", amount)
	}
}

func TestProcessorReferencesAreUnique(t *testing.T) {
	tx := domain.NewTransaction(1, decimal.RequireFromString("12.50"), "Lunch")
	a, err := MobileMoneyProcessor{}.Process(tx)
	require.NoError(t, err)
	b, err := MobileMoneyProcessor{}.Process(tx)
	require.NoError(t, err)
	assert.NotEqual(t, a.Reference, b.Reference)
	assert.Equal(t, "Mobile money: Amount 12.5 for Lunch", a.Description)
}
