package cmd

import (
	"context"
	"fmt"
	"os"

	"itemkeeper/cmd/client/cmd/auth"
	itemcmd "itemkeeper/cmd/client/cmd/item"
	"itemkeeper/cmd/client/cmd/types"
	"itemkeeper/internal/app/client"
	"itemkeeper/internal/app/client/config"
	"itemkeeper/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "itemkeeper",
	Short: "Itemkeeper - client for the item record service",
	Long: `Itemkeeper is the command-line client for the item record service.

Register and log in to obtain a bearer token, then create, list, fetch,
and bulk-update item records.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "itemkeeper server URL")

	rootCmd.AddCommand(auth.RegisterCmd)
	rootCmd.AddCommand(auth.LoginCmd)
	rootCmd.AddCommand(itemcmd.ItemsCmd)
}
