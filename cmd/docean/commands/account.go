package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account information",
		Long:  "Display the account associated with the configured access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.Account().Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(account)
			case OutputFormatYAML:
				return outputYAML(account)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Email", account.Email)
				_ = table.Append("UUID", account.UUID)
				_ = table.Append("Status", displayStatus(account.Status))
				_ = table.Append("Email Verified", strconv.FormatBool(account.EmailVerified))
				_ = table.Append("Droplet Limit", strconv.Itoa(account.DropletLimit))
				_ = table.Append("Volume Limit", strconv.Itoa(account.VolumeLimit))

				if account.Team != nil {
					_ = table.Append("Team", account.Team.Name)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}
