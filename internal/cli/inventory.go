package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coursework/internal/domain"
	"coursework/internal/service"
)

func demoInventory(now time.Time) []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Name: "Laptop", Quantity: 5, DateAdded: now},
		{ID: 2, Name: "Mouse", Quantity: 20, DateAdded: now},
		{ID: 3, Name: "Keyboard", Quantity: 15, DateAdded: now},
		{ID: 4, Name: "Monitor", Quantity: 8, DateAdded: now},
		{ID: 5, Name: "Printer", Quantity: 3, DateAdded: now},
	}
}

func inventoryCmd(a *app) *cobra.Command {
	var reloadOnly bool

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Log inventory items, persist them and read them back",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			store, closeStore, err := openSnapshotter[domain.InventoryItem](a.cfg, "inventory", a.cfg.InventoryPath())
			if err != nil {
				return err
			}
			defer closeStore()

			if !reloadOnly {
				writer := service.NewInventoryLogger(store, a.log, a.events)
				for _, item := range demoInventory(time.Now()) {
					if err := writer.Add(item); err != nil {
						return err
					}
				}

				ctx, cancel := a.storeContext(cmd)
				err := writer.Save(ctx)
				cancel()
				if err != nil {
					fmt.Fprintf(out, "Error saving to file: %v\n", err)
				}
			}

			// A fresh logger simulates a new session reading the saved data.
			reader := service.NewInventoryLogger(store, a.log, a.events)
			ctx, cancel := a.storeContext(cmd)
			defer cancel()
			if err := reader.Load(ctx); err != nil {
				fmt.Fprintf(out, "Error loading from file: %v\n", err)
			}

			for _, item := range reader.GetAll() {
				fmt.Fprintf(out, "ID: %d, Name: %s, Quantity: %d, Date Added: %s\n",
					item.ID, item.Name, item.Quantity, item.DateAdded.Format(time.DateTime))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reloadOnly, "reload-only", false, "skip seeding and print what is already stored")
	return cmd
}
