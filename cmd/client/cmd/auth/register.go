package auth

import (
	"fmt"
	"os"

	"itemkeeper/cmd/client/cmd/types"
	"itemkeeper/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client not initialized")
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}

		summary, err := app.Register(cmd.Context(), email, string(password))
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("Registered %s (user id %d)", summary.Email, summary.ID)
		fmt.Println("Run `itemkeeper login` to obtain a token.")
		return nil
	},
}
