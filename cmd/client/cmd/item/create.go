package item

import (
	"fmt"

	"itemkeeper/cmd/client/cmd/types"
	"itemkeeper/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	createName  string
	createPrice float64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new item",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client not initialized")
		}

		if !app.HasToken() {
			return fmt.Errorf("not logged in, run `itemkeeper login` first")
		}

		created, err := app.CreateItem(cmd.Context(), createName, createPrice)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		color.Green("Created item %d: %s (%.2f)", created.ID, created.Name, created.Price)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "item name")
	createCmd.Flags().Float64Var(&createPrice, "price", 0, "item price")
	_ = createCmd.MarkFlagRequired("name")
}
