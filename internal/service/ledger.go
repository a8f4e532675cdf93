package service

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"coursework/internal/domain"
	"coursework/internal/repository"
)

// LedgerService records transactions against a single account
type LedgerService struct {
	account      *domain.Account
	transactions *repository.Repository[domain.Transaction]
	byCategory   *repository.Index[string, domain.Transaction]
	receipts     []domain.Receipt
	log          zerolog.Logger
	events       *EventBus
}

// NewLedgerService creates a ledger for account
func NewLedgerService(account *domain.Account, log zerolog.Logger, events *EventBus) *LedgerService {
	transactions := repository.New[domain.Transaction]("transaction")
	return &LedgerService{
		account:      account,
		transactions: transactions,
		byCategory: repository.BuildIndex(transactions, func(tx domain.Transaction) string {
			return tx.Category
		}),
		log:    log.With().Str("component", "ledger").Str("account", account.Number).Logger(),
		events: events,
	}
}

// Record settles tx through the processor for method, applies it to the
// account and stores it. A transaction that fails any step is not stored
// and leaves the balance unchanged.
func (s *LedgerService) Record(method domain.PaymentMethod, tx domain.Transaction) (domain.Receipt, error) {
	if s.transactions.Contains(tx.ID) {
		return domain.Receipt{}, domain.NewDuplicateEntityError("ledger.record", s.transactions.Name(), tx.ID)
	}

	processor, err := ProcessorFor(method)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt, err := processor.Process(tx)
	if err != nil {
		return domain.Receipt{}, err
	}

	if err := s.account.Apply(tx); err != nil {
		s.log.Warn().Err(err).Int("transaction", tx.ID).Msg("transaction rejected")
		return domain.Receipt{}, err
	}

	if err := s.transactions.Add(tx); err != nil {
		return domain.Receipt{}, err
	}
	s.receipts = append(s.receipts, receipt)

	s.log.Debug().
		Int("transaction", tx.ID).
		Str("method", string(method)).
		Str("amount", tx.Amount.String()).
		Str("balance", s.account.Balance.String()).
		Msg("transaction recorded")
	s.events.Publish(Event{
		Type:       EventTransactionRecorded,
		Collection: s.transactions.Name(),
		EntityID:   tx.ID,
		Payload:    map[string]any{"reference": receipt.Reference.String(), "balance": s.account.Balance.String()},
	})

	return receipt, nil
}

// Balance returns the current account balance
func (s *LedgerService) Balance() decimal.Decimal {
	return s.account.Balance
}

// Account returns the ledger account
func (s *LedgerService) Account() *domain.Account {
	return s.account
}

// Transactions returns the stored transactions in recording order
func (s *LedgerService) Transactions() []domain.Transaction {
	return s.transactions.GetAll()
}

// Receipts returns the receipts of stored transactions
func (s *LedgerService) Receipts() []domain.Receipt {
	out := make([]domain.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

// ByCategory returns the transactions recorded under category
func (s *LedgerService) ByCategory(category string) []domain.Transaction {
	s.refreshIndex()
	return s.byCategory.GetGroup(category)
}

// Categories lists categories in first-seen order
func (s *LedgerService) Categories() []string {
	s.refreshIndex()
	return s.byCategory.Keys()
}

func (s *LedgerService) refreshIndex() {
	if !s.byCategory.Stale() {
		return
	}
	s.byCategory.Rebuild()
	s.events.Publish(Event{Type: EventIndexRebuilt, Collection: s.transactions.Name()})
}
