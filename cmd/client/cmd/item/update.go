package item

import (
	"fmt"

	"itemkeeper/cmd/client/cmd/types"
	"itemkeeper/internal/app/client"
	"itemkeeper/internal/domain/item"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateIDs   []int
	updateName  string
	updatePrice float64
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Bulk-update items",
	Long: `Applies the given fields to every listed id. Ids that do not exist
are skipped; the command prints the ids that were actually updated.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client not initialized")
		}

		if !app.HasToken() {
			return fmt.Errorf("not logged in, run `itemkeeper login` first")
		}

		var patch item.Patch
		if cmd.Flags().Changed("name") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("price") {
			patch.Price = &updatePrice
		}
		if patch.Name == nil && patch.Price == nil {
			return fmt.Errorf("nothing to update, pass --name and/or --price")
		}

		updated, err := app.UpdateItems(cmd.Context(), updateIDs, patch)
		if err != nil {
			return fmt.Errorf("update items: %w", err)
		}

		if len(updated) == 0 {
			fmt.Println("No matching items.")
			return nil
		}

		color.Green("Updated items: %v", updated)
		return nil
	},
}

func init() {
	updateCmd.Flags().IntSliceVar(&updateIDs, "ids", nil, "ids to update")
	updateCmd.Flags().StringVar(&updateName, "name", "", "new name")
	updateCmd.Flags().Float64Var(&updatePrice, "price", 0, "new price")
	_ = updateCmd.MarkFlagRequired("ids")
}
