package item

import (
	"fmt"

	"itemkeeper/cmd/client/cmd/types"
	"itemkeeper/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client not initialized")
		}

		items, err := app.ListItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No items yet.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%-6s %-30s %10s\n", "ID", "NAME", "PRICE")
		for _, it := range items {
			fmt.Printf("%-6d %-30s %10.2f\n", it.ID, it.Name, it.Price)
		}
		return nil
	},
}
