package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/domain"
)

func newSavingsLedger(balance int64) *LedgerService {
	account := domain.NewSavingsAccount("123456", decimal.NewFromInt(balance))
	return NewLedgerService(account, zerolog.Nop(), nil)
}

func TestLedgerRecord(t *testing.T) {
	t.Run("demo sequence", func(t *testing.T) {
		ledger := newSavingsLedger(1000)

		_, err := ledger.Record(domain.PaymentMobileMoney, domain.NewTransaction(1, decimal.NewFromInt(200), "Groceries"))
		require.NoError(t, err)
		receipt, err := ledger.Record(domain.PaymentBankTransfer, domain.NewTransaction(2, decimal.NewFromInt(100), "Utilities"))
		require.NoError(t, err)
		_, err = ledger.Record(domain.PaymentCryptoWallet, domain.NewTransaction(3, decimal.NewFromInt(50), "Entertainment"))
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(650).Equal(ledger.Balance()))
		assert.Equal(t, "Bank transfer: Amount 100 for Utilities", receipt.Description)
		assert.Len(t, ledger.Transactions(), 3)
		assert.Len(t, ledger.Receipts(), 3)
	})

	t.Run("insufficient funds leaves balance and ledger untouched", func(t *testing.T) {
		ledger := newSavingsLedger(100)

		_, err := ledger.Record(domain.PaymentBankTransfer, domain.NewTransaction(1, decimal.NewFromInt(150), "Rent"))
		var funds domain.InsufficientFundsError
		require.ErrorAs(t, err, &funds)
		assert.True(t, decimal.NewFromInt(100).Equal(ledger.Balance()))
		assert.Empty(t, ledger.Transactions())
	})

	t.Run("standard account may overdraw", func(t *testing.T) {
		ledger := NewLedgerService(domain.NewAccount("42", decimal.NewFromInt(10)), zerolog.Nop(), nil)

		_, err := ledger.Record(domain.PaymentBankTransfer, domain.NewTransaction(1, decimal.NewFromInt(25), "Rent"))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-15).Equal(ledger.Balance()))
	})

	t.Run("duplicate transaction id", func(t *testing.T) {
		ledger := newSavingsLedger(1000)
		tx := domain.NewTransaction(1, decimal.NewFromInt(10), "Snacks")

		_, err := ledger.Record(domain.PaymentMobileMoney, tx)
		require.NoError(t, err)
		_, err = ledger.Record(domain.PaymentMobileMoney, tx)
		assert.ErrorIs(t, err, domain.ErrDuplicateEntity)
		assert.True(t, decimal.NewFromInt(990).Equal(ledger.Balance()))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		ledger := newSavingsLedger(1000)

		_, err := ledger.Record(domain.PaymentCryptoWallet, domain.NewTransaction(1, decimal.Zero, "Nothing"))
		assert.ErrorIs(t, err, domain.ErrInvalidValue)
		assert.Empty(t, ledger.Transactions())
	})

	t.Run("unknown method", func(t *testing.T) {
		ledger := newSavingsLedger(1000)

		_, err := ledger.Record(domain.PaymentMethod("cheque"), domain.NewTransaction(1, decimal.NewFromInt(5), "Misc"))
		assert.ErrorContains(t, err, "unknown payment method")
	})
}

func TestLedgerByCategory(t *testing.T) {
	bus := NewEventBus()
	ch := make(chan Event, 16)
	bus.Subscribe(ch)

	ledger := NewLedgerService(domain.NewAccount("1", decimal.NewFromInt(1000)), zerolog.Nop(), bus)
	record := func(id int, amount int64, category string) {
		_, err := ledger.Record(domain.PaymentBankTransfer, domain.NewTransaction(id, decimal.NewFromInt(amount), category))
		require.NoError(t, err)
	}

	record(1, 10, "Food")
	record(2, 20, "Rent")
	record(3, 30, "Food")

	food := ledger.ByCategory("Food")
	require.Len(t, food, 2)
	assert.Equal(t, 1, food[0].ID)
	assert.Equal(t, 3, food[1].ID)
	assert.Equal(t, []string{"Food", "Rent"}, ledger.Categories())
	assert.Empty(t, ledger.ByCategory("Travel"))

	record(4, 5, "Travel")
	assert.Len(t, ledger.ByCategory("Travel"), 1)

	var rebuilt int
	for len(ch) > 0 {
		if (<-ch).Type == EventIndexRebuilt {
			rebuilt++
		}
	}
	assert.Equal(t, 2, rebuilt)
}
