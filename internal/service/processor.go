package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"coursework/internal/domain"
)

// Processor settles a transaction through one payment method
type Processor interface {
	Method() domain.PaymentMethod
	Process(tx domain.Transaction) (domain.Receipt, error)
}

// BankTransferProcessor settles transactions by bank transfer
type BankTransferProcessor struct{}

func (BankTransferProcessor) Method() domain.PaymentMethod { return domain.PaymentBankTransfer }

func (p BankTransferProcessor) Process(tx domain.Transaction) (domain.Receipt, error) {
	return settle(p.Method(), tx)
}

// MobileMoneyProcessor settles transactions through a mobile money wallet
type MobileMoneyProcessor struct{}

func (MobileMoneyProcessor) Method() domain.PaymentMethod { return domain.PaymentMobileMoney }

func (p MobileMoneyProcessor) Process(tx domain.Transaction) (domain.Receipt, error) {
	return settle(p.Method(), tx)
}

// CryptoWalletProcessor settles transactions from a crypto wallet
type CryptoWalletProcessor struct{}

func (CryptoWalletProcessor) Method() domain.PaymentMethod { return domain.PaymentCryptoWallet }

func (p CryptoWalletProcessor) Process(tx domain.Transaction) (domain.Receipt, error) {
	return settle(p.Method(), tx)
}

// ProcessorFor returns the processor for a payment method
func ProcessorFor(method domain.PaymentMethod) (Processor, error) {
	switch method {
	case domain.PaymentBankTransfer:
		return BankTransferProcessor{}, nil
	case domain.PaymentMobileMoney:
		return MobileMoneyProcessor{}, nil
	case domain.PaymentCryptoWallet:
		return CryptoWalletProcessor{}, nil
	default:
		return nil, fmt.Errorf("unknown payment method %q", method)
	}
}

func settle(method domain.PaymentMethod, tx domain.Transaction) (domain.Receipt, error) {
	if !tx.Amount.IsPositive() {
		return domain.Receipt{}, domain.NewInvalidValueError("processor.process", "transaction", tx.ID, "amount must be positive")
	}

	return domain.Receipt{
		Reference:     uuid.New(),
		Method:        method,
		TransactionID: tx.ID,
		Description:   fmt.Sprintf("%s: Amount %s for %s", method.Label(), tx.Amount.String(), tx.Category),
		ProcessedAt:   time.Now(),
	}, nil
}
