package item

import (
	"github.com/spf13/cobra"
)

var ItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage item records",
}

func init() {
	ItemsCmd.AddCommand(createCmd)
	ItemsCmd.AddCommand(listCmd)
	ItemsCmd.AddCommand(getCmd)
	ItemsCmd.AddCommand(updateCmd)
}
