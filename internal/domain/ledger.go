package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a transaction is settled
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentCryptoWallet PaymentMethod = "crypto_wallet"
)

// PaymentMethods lists every supported method in a stable order
var PaymentMethods = []PaymentMethod{PaymentBankTransfer, PaymentMobileMoney, PaymentCryptoWallet}

// ParsePaymentMethod validates a method name
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Label returns the human readable method name
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentBankTransfer:
		return "Bank transfer"
	case PaymentMobileMoney:
		return "Mobile money"
	case PaymentCryptoWallet:
		return "Crypto wallet"
	default:
		return string(m)
	}
}

// Transaction is an immutable ledger entry
type Transaction struct {
	ID       int             `json:"id" yaml:"id"`
	Date     time.Time       `json:"date" yaml:"date"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Category string          `json:"category" yaml:"category"`
}

// NewTransaction creates a transaction dated now
func NewTransaction(id int, amount decimal.Decimal, category string) Transaction {
	return Transaction{ID: id, Date: time.Now(), Amount: amount, Category: category}
}

// EntityID returns the transaction id
func (t Transaction) EntityID() int {
	return t.ID
}

// Receipt is the confirmation a processor hands back
type Receipt struct {
	Reference     uuid.UUID     `json:"reference"`
	Method        PaymentMethod `json:"method"`
	TransactionID int           `json:"transaction_id"`
	Description   string        `json:"description"`
	ProcessedAt   time.Time     `json:"processed_at"`
}

// AccountKind selects the withdrawal rules of an account
type AccountKind string

const (
	AccountKindStandard AccountKind = "standard"
	AccountKindSavings  AccountKind = "savings"
)

// Account holds a balance that transactions are applied against
type Account struct {
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
	Kind    AccountKind     `json:"kind"`
}

// NewAccount creates a standard account
func NewAccount(number string, balance decimal.Decimal) *Account {
	return &Account{Number: number, Balance: balance, Kind: AccountKindStandard}
}

// NewSavingsAccount creates an account that cannot be overdrawn
func NewSavingsAccount(number string, balance decimal.Decimal) *Account {
	return &Account{Number: number, Balance: balance, Kind: AccountKindSavings}
}

// Apply deducts the transaction amount from the balance
func (a *Account) Apply(tx Transaction) error {
	if a.Kind == AccountKindSavings && tx.Amount.GreaterThan(a.Balance) {
		return InsufficientFundsError{
			Account:   a.Number,
			Requested: tx.Amount,
			Available: a.Balance,
		}
	}
	a.Balance = a.Balance.Sub(tx.Amount)
	return nil
}
