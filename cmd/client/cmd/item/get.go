package item

import (
	"fmt"
	"strconv"

	"itemkeeper/cmd/client/cmd/types"
	"itemkeeper/internal/app/client"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one item by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client not initialized")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		it, err := app.GetItem(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		fmt.Printf("%-6d %-30s %10.2f\n", it.ID, it.Name, it.Price)
		return nil
	},
}
