package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"coursework/internal/domain"
	"coursework/internal/loader"
	"coursework/internal/service"
)

func warehouseCmd(a *app) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Stock the warehouse and exercise its error handling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			seed, err := loader.LoadSeedOrDefault(firstNonEmpty(seedPath, a.cfg.Data.Seed))
			if err != nil {
				return err
			}

			m := service.NewWarehouseManager(a.log, a.events)
			if err := m.Seed(seed.Electronics, seed.Groceries); err != nil {
				return err
			}

			printShelf(out, m.Groceries)
			printShelf(out, m.Electronics)

			duplicate := domain.NewGroceryItem(1, "Duplicate Milk", 10, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
			if err := m.Groceries.Add(duplicate); err != nil {
				fmt.Fprintf(out, "Error adding duplicate item: %v\n", err)
			}
			if err := m.Electronics.Remove(999); err != nil {
				fmt.Fprintf(out, "Error removing non-existent item: %v\n", err)
			}
			if err := m.Groceries.SetQuantity(1, -5); err != nil {
				fmt.Fprintf(out, "Error updating with invalid quantity: %v\n", err)
			}

			threshold := a.cfg.Warehouse.LowStockThreshold
			fmt.Fprintf(out, "Low stock (below %d):\n", threshold)
			for _, item := range m.Electronics.LowStock(threshold) {
				fmt.Fprintf(out, "  %s (%d)\n", item.ItemName(), item.Qty())
			}
			for _, item := range m.Groceries.LowStock(threshold) {
				fmt.Fprintf(out, "  %s (%d)\n", item.ItemName(), item.Qty())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML seed file (default: built-in demo data)")
	return cmd
}

func printShelf[T domain.StockItem](w io.Writer, shelf *service.Shelf[T]) {
	fmt.Fprintf(w, "Printing %ss:\n", shelf.Name())
	for _, item := range shelf.Items() {
		for _, line := range service.Describe(item) {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w)
}
