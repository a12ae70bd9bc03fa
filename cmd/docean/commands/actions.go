package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/docean/internal/constants"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// NewActionsCommand creates the actions command group
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "Inspect actions",
		Long:    "List and inspect actions performed on account resources",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())

	return cmd
}

func renderActionsTable(actions []docean.Action) {
	if len(actions) == 0 {
		fmt.Println("No actions found")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Status", "Resource", "Region", "Started")

	for _, action := range actions {
		resource := fmt.Sprintf("%s %d", action.ResourceType, action.ResourceID)

		region := action.RegionSlug
		if region == "" {
			region = NotAvailable
		}

		_ = table.Append(
			strconv.Itoa(action.ID),
			action.Type,
			displayStatus(action.Status),
			resource,
			region,
			action.StartedAt,
		)
	}

	_ = table.Render()
}

func newActionsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actions",
		Long:  "List actions performed on resources in the account, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			actions, err := client.Actions().List(ctx, docean.NewListParams().WithPage(page).WithPerPage(perPage))
			if err != nil {
				return fmt.Errorf("failed to list actions: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(actions.Resources)
			case OutputFormatYAML:
				return outputYAML(actions.Resources)
			default:
				renderActionsTable(actions.Resources)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newActionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACTION_ID",
		Short: "Get action details",
		Long:  "Display detailed information about a single action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actionID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", constants.ErrInvalidActionID, args[0])
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			action, err := client.Actions().Get(ctx, actionID)
			if err != nil {
				return fmt.Errorf("failed to get action: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(action)
			case OutputFormatYAML:
				return outputYAML(action)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(action.ID))
				_ = table.Append("Type", action.Type)
				_ = table.Append("Status", displayStatus(action.Status))
				_ = table.Append("Resource Type", action.ResourceType)
				_ = table.Append("Resource ID", strconv.Itoa(action.ResourceID))
				_ = table.Append("Started", action.StartedAt)
				_ = table.Append("Completed", action.CompletedAt)
				_ = table.Render()
			}

			return nil
		},
	}
}
