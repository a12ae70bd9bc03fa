package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/docean/pkg/docean"
	"github.com/fivetwenty-io/docean/pkg/doclient"
)

// NewAuthCommand creates the auth command group
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  "Store and remove the personal access token used for API requests",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthLogoutCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to DigitalOcean",
		Long:  "Validate a personal access token and store it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Personal access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			// Verify the token before persisting it
			ctx := context.Background()

			client, err := doclient.New(ctx, &docean.Config{
				AccessToken: token,
				APIEndpoint: viper.GetString("api"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			account, err := client.Account().Get(ctx)
			if err != nil {
				if docean.IsUnauthorized(err) {
					return fmt.Errorf("token rejected by the API: %w", err)
				}

				return fmt.Errorf("failed to verify token: %w", err)
			}

			config := loadConfig()
			config.Token = token
			config.API = viper.GetString("api")

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in as %s\n", account.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "personal access token (prompted when omitted)")

	return cmd
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from DigitalOcean",
		Long:  "Remove the stored personal access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Logged out")

			return nil
		},
	}
}
