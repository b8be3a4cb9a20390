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

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the bearer token locally",
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

		token, err := app.Login(cmd.Context(), email, string(password))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := app.SaveToken(token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		color.Green("Logged in as %s", email)
		return nil
	},
}
