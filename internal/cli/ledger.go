package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"coursework/internal/domain"
	"coursework/internal/service"
)

type ledgerEntry struct {
	method domain.PaymentMethod
	tx     domain.Transaction
}

func demoLedger() []ledgerEntry {
	return []ledgerEntry{
		{domain.PaymentMobileMoney, domain.NewTransaction(1, decimal.NewFromInt(200), "Groceries")},
		{domain.PaymentBankTransfer, domain.NewTransaction(2, decimal.NewFromInt(100), "Utilities")},
		{domain.PaymentCryptoWallet, domain.NewTransaction(3, decimal.NewFromInt(50), "Entertainment")},
	}
}

func ledgerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Process demo transactions against the configured account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			balance, err := decimal.NewFromString(a.cfg.Ledger.OpeningBalance)
			if err != nil {
				return fmt.Errorf("invalid opening balance %q: %w", a.cfg.Ledger.OpeningBalance, err)
			}

			account := domain.NewAccount(a.cfg.Ledger.AccountNumber, balance)
			if a.cfg.Ledger.Savings {
				account = domain.NewSavingsAccount(a.cfg.Ledger.AccountNumber, balance)
			}
			ledger := service.NewLedgerService(account, a.log, a.events)

			for _, entry := range demoLedger() {
				receipt, err := ledger.Record(entry.method, entry.tx)
				var funds domain.InsufficientFundsError
				switch {
				case errors.As(err, &funds):
					fmt.Fprintln(out, "Insufficient funds")
					continue
				case err != nil:
					fmt.Fprintf(out, "Error: %v\n", err)
					continue
				}
				fmt.Fprintln(out, receipt.Description)
				fmt.Fprintf(out, "Updated balance: %s\n", ledger.Balance().String())
			}

			fmt.Fprintln(out, "Transactions by category:")
			for _, category := range ledger.Categories() {
				total := decimal.Zero
				for _, tx := range ledger.ByCategory(category) {
					total = total.Add(tx.Amount)
				}
				fmt.Fprintf(out, "  %s: %s\n", category, total.String())
			}
			return nil
		},
	}
}
