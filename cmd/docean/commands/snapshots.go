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

// NewSnapshotsCommand creates the snapshots command group
func NewSnapshotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshots",
		Aliases: []string{"snapshot"},
		Short:   "Manage snapshots",
		Long:    "List, inspect, and delete droplet and volume snapshots",
	}

	cmd.AddCommand(newSnapshotsListCommand())
	cmd.AddCommand(newSnapshotsGetCommand())
	cmd.AddCommand(newSnapshotsDeleteCommand())

	return cmd
}

func newSnapshotsListCommand() *cobra.Command {
	var (
		resourceType string
		page         int
		perPage      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots",
		Long:  "List snapshots in the account, optionally filtered by resource type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			params := docean.NewListParams().WithPage(page).WithPerPage(perPage)
			if resourceType != "" {
				params.WithResourceType(resourceType)
			}

			snapshots, err := client.Snapshots().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list snapshots: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(snapshots.Resources)
			case OutputFormatYAML:
				return outputYAML(snapshots.Resources)
			default:
				if len(snapshots.Resources) == 0 {
					fmt.Println("No snapshots found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Resource", "Regions", "Size (GB)", "Created")

				for _, snapshot := range snapshots.Resources {
					_ = table.Append(
						snapshot.ID,
						snapshot.Name,
						fmt.Sprintf("%s %s", snapshot.ResourceType, snapshot.ResourceID),
						joinOrNA(snapshot.Regions),
						strconv.FormatFloat(snapshot.SizeGigabytes, 'f', -1, 64),
						snapshot.CreatedAt,
					)
				}

				_ = table.Render()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&resourceType, "resource-type", "", "filter by resource type (droplet, volume)")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newSnapshotsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SNAPSHOT_ID",
		Short: "Get snapshot details",
		Long:  "Display detailed information about a single snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			snapshot, err := client.Snapshots().Get(ctx, args[0])
			if err != nil {
				if docean.IsNotFound(err) {
					return fmt.Errorf("snapshot %q not found: %w", args[0], err)
				}

				return fmt.Errorf("failed to get snapshot: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(snapshot)
			case OutputFormatYAML:
				return outputYAML(snapshot)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", snapshot.ID)
				_ = table.Append("Name", snapshot.Name)
				_ = table.Append("Resource Type", snapshot.ResourceType)
				_ = table.Append("Resource ID", snapshot.ResourceID)
				_ = table.Append("Regions", joinOrNA(snapshot.Regions))
				_ = table.Append("Min Disk Size", strconv.Itoa(snapshot.MinDiskSize)+" GB")
				_ = table.Append("Size", strconv.FormatFloat(snapshot.SizeGigabytes, 'f', -1, 64)+" GB")
				_ = table.Append("Created", snapshot.CreatedAt)
				_ = table.Append("Tags", joinOrNA(snapshot.Tags))
				_ = table.Render()
			}

			return nil
		},
	}
}

func newSnapshotsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SNAPSHOT_ID",
		Short: "Delete a snapshot",
		Long:  "Permanently delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.Snapshots().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete snapshot: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted snapshot %s\n", args[0])

			return nil
		},
	}
}
