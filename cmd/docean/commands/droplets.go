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

// NewDropletsCommand creates the droplets command group
func NewDropletsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "droplets",
		Aliases: []string{"droplet", "d"},
		Short:   "Manage droplets",
		Long:    "List, create, and manage DigitalOcean droplets",
	}

	cmd.AddCommand(newDropletsListCommand())
	cmd.AddCommand(newDropletsGetCommand())
	cmd.AddCommand(newDropletsCreateCommand())
	cmd.AddCommand(newDropletsDeleteCommand())
	cmd.AddCommand(newDropletsKernelsCommand())
	cmd.AddCommand(newDropletsSnapshotsCommand())
	cmd.AddCommand(newDropletsBackupsCommand())
	cmd.AddCommand(newDropletsActionsCommand())
	cmd.AddCommand(newDropletsNeighborsCommand())

	return cmd
}

func parseDropletID(arg string) (int, error) {
	dropletID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidDropletID, arg)
	}

	return dropletID, nil
}

func publicIPv4(droplet *docean.Droplet) string {
	if droplet.Networks == nil {
		return NotAvailable
	}

	for _, network := range droplet.Networks.V4 {
		if network.Type == "public" {
			return network.IPAddress
		}
	}

	return NotAvailable
}

func regionSlug(droplet *docean.Droplet) string {
	if droplet.Region == nil {
		return NotAvailable
	}

	return droplet.Region.Slug
}

func renderDropletsTable(droplets []docean.Droplet) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Region", "Size", "Public IPv4", "Tags")

	for idx := range droplets {
		droplet := &droplets[idx]
		_ = table.Append(
			strconv.Itoa(droplet.ID),
			droplet.Name,
			displayStatus(droplet.Status),
			regionSlug(droplet),
			droplet.SizeSlug,
			publicIPv4(droplet),
			joinOrNA(droplet.Tags),
		)
	}

	_ = table.Render()
}

func newDropletsListCommand() *cobra.Command {
	var (
		tag     string
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List droplets",
		Long:  "List all droplets in the account, optionally filtered by tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			params := docean.NewListParams().WithPage(page).WithPerPage(perPage)

			var droplets *docean.DropletList
			if tag != "" {
				droplets, err = client.Droplets().ListByTag(ctx, tag, params)
			} else {
				droplets, err = client.Droplets().List(ctx, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list droplets: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(droplets.Resources)
			case OutputFormatYAML:
				return outputYAML(droplets.Resources)
			default:
				if len(droplets.Resources) == 0 {
					fmt.Println("No droplets found")

					return nil
				}

				renderDropletsTable(droplets.Resources)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag name")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newDropletsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DROPLET_ID",
		Short: "Get droplet details",
		Long:  "Display detailed information about a single droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			droplet, err := client.Droplets().Get(ctx, dropletID)
			if err != nil {
				if docean.IsNotFound(err) {
					return fmt.Errorf("droplet %d not found: %w", dropletID, err)
				}

				return fmt.Errorf("failed to get droplet: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(droplet)
			case OutputFormatYAML:
				return outputYAML(droplet)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(droplet.ID))
				_ = table.Append("Name", droplet.Name)
				_ = table.Append("Status", displayStatus(droplet.Status))
				_ = table.Append("Region", regionSlug(droplet))
				_ = table.Append("Size", droplet.SizeSlug)
				_ = table.Append("Memory", strconv.Itoa(droplet.Memory)+" MB")
				_ = table.Append("VCPUs", strconv.Itoa(droplet.VCPUs))
				_ = table.Append("Disk", strconv.Itoa(droplet.Disk)+" GB")
				_ = table.Append("Public IPv4", publicIPv4(droplet))
				_ = table.Append("Tags", joinOrNA(droplet.Tags))
				_ = table.Append("Created", droplet.CreatedAt)

				if droplet.VPCUUID != "" {
					_ = table.Append("VPC", droplet.VPCUUID)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

//nolint:funlen // flag wiring dominates the length
func newDropletsCreateCommand() *cobra.Command {
	var (
		region     string
		size       string
		image      string
		sshKeys    []string
		tags       []string
		userData   string
		backups    bool
		ipv6       bool
		monitoring bool
		vpcUUID    string
	)

	cmd := &cobra.Command{
		Use:   "create NAME [NAME...]",
		Short: "Create droplets",
		Long:  "Create one droplet, or several at once when multiple names are given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			var created []docean.Droplet

			if len(args) == 1 {
				droplet, err := client.Droplets().Create(ctx, &docean.DropletCreateRequest{
					Name:       args[0],
					Region:     region,
					Size:       size,
					Image:      image,
					SSHKeys:    sshKeys,
					Backups:    backups,
					IPv6:       ipv6,
					Monitoring: monitoring,
					UserData:   userData,
					Tags:       tags,
					VPCUUID:    vpcUUID,
				})
				if err != nil {
					return fmt.Errorf("failed to create droplet: %w", err)
				}

				created = []docean.Droplet{*droplet}
			} else {
				created, err = client.Droplets().CreateMultiple(ctx, &docean.DropletMultiCreateRequest{
					Names:      args,
					Region:     region,
					Size:       size,
					Image:      image,
					SSHKeys:    sshKeys,
					Backups:    backups,
					IPv6:       ipv6,
					Monitoring: monitoring,
					UserData:   userData,
					Tags:       tags,
					VPCUUID:    vpcUUID,
				})
				if err != nil {
					return fmt.Errorf("failed to create droplets: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(created)
			case OutputFormatYAML:
				return outputYAML(created)
			default:
				renderDropletsTable(created)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "region slug (required)")
	cmd.Flags().StringVar(&size, "size", "", "size slug (required)")
	cmd.Flags().StringVar(&image, "image", "", "image slug or ID (required)")
	cmd.Flags().StringSliceVar(&sshKeys, "ssh-keys", nil, "SSH key IDs or fingerprints")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags to apply")
	cmd.Flags().StringVar(&userData, "user-data", "", "cloud-init script")
	cmd.Flags().BoolVar(&backups, "backups", false, "enable automated backups")
	cmd.Flags().BoolVar(&ipv6, "ipv6", false, "enable IPv6")
	cmd.Flags().BoolVar(&monitoring, "monitoring", false, "install the metrics agent")
	cmd.Flags().StringVar(&vpcUUID, "vpc", "", "VPC UUID")

	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newDropletsDeleteCommand() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "delete [DROPLET_ID]",
		Short: "Delete droplets",
		Long:  "Delete a droplet by ID, or every droplet carrying a tag with --tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			if tag != "" {
				err = client.Droplets().DeleteByTag(ctx, tag)
				if err != nil {
					return fmt.Errorf("failed to delete droplets by tag: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Deleted droplets tagged %q\n", tag)

				return nil
			}

			if len(args) == 0 {
				return constants.ErrDropletIDRequired
			}

			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			err = client.Droplets().Delete(ctx, dropletID)
			if err != nil {
				return fmt.Errorf("failed to delete droplet: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted droplet %d\n", dropletID)

			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "delete all droplets with this tag")

	return cmd
}

func newDropletsKernelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels DROPLET_ID",
		Short: "List available kernels",
		Long:  "List kernels available to a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			kernels, err := client.Droplets().Kernels(ctx, dropletID, nil)
			if err != nil {
				return fmt.Errorf("failed to list kernels: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(kernels.Resources)
			case OutputFormatYAML:
				return outputYAML(kernels.Resources)
			default:
				if len(kernels.Resources) == 0 {
					fmt.Println("No kernels found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Version")

				for _, kernel := range kernels.Resources {
					_ = table.Append(strconv.Itoa(kernel.ID), kernel.Name, kernel.Version)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func renderImagesTable(images []docean.Image) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Regions", "Size (GB)", "Created")

	for _, image := range images {
		_ = table.Append(
			strconv.Itoa(image.ID),
			image.Name,
			image.Type,
			joinOrNA(image.Regions),
			strconv.FormatFloat(image.SizeGigabytes, 'f', -1, 64),
			image.CreatedAt,
		)
	}

	_ = table.Render()
}

func newDropletsSnapshotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots DROPLET_ID",
		Short: "List droplet snapshots",
		Long:  "List snapshots taken of a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			snapshots, err := client.Droplets().Snapshots(ctx, dropletID, nil)
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

				renderImagesTable(snapshots.Resources)
			}

			return nil
		},
	}
}

func newDropletsBackupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backups DROPLET_ID",
		Short: "List droplet backups",
		Long:  "List automated backups of a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			backups, err := client.Droplets().Backups(ctx, dropletID, nil)
			if err != nil {
				return fmt.Errorf("failed to list backups: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(backups.Resources)
			case OutputFormatYAML:
				return outputYAML(backups.Resources)
			default:
				if len(backups.Resources) == 0 {
					fmt.Println("No backups found")

					return nil
				}

				renderImagesTable(backups.Resources)
			}

			return nil
		},
	}
}

func newDropletsActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions DROPLET_ID",
		Short: "List droplet actions",
		Long:  "List actions performed on a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			actions, err := client.Droplets().Actions(ctx, dropletID, nil)
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
}

func newDropletsNeighborsCommand() *cobra.Command {
	var ids bool

	cmd := &cobra.Command{
		Use:   "neighbors [DROPLET_ID]",
		Short: "List droplet neighbors",
		Long: `List droplets sharing physical hardware with the given droplet,
or with --ids the account-wide report of co-located droplet ID groups`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			if ids {
				groups, err := client.Droplets().ListNeighborIDs(ctx)
				if err != nil {
					return fmt.Errorf("failed to list neighbor IDs: %w", err)
				}

				output := viper.GetString("output")
				switch output {
				case OutputFormatJSON:
					return outputJSON(groups)
				case OutputFormatYAML:
					return outputYAML(groups)
				default:
					if len(groups) == 0 {
						fmt.Println("No co-located droplets found")

						return nil
					}

					table := tablewriter.NewWriter(os.Stdout)
					table.Header("Group", "Droplet IDs")

					for idx, group := range groups {
						members := make([]string, 0, len(group))
						for _, id := range group {
							members = append(members, strconv.Itoa(id))
						}

						_ = table.Append(strconv.Itoa(idx+1), joinOrNA(members))
					}

					_ = table.Render()
				}

				return nil
			}

			if len(args) == 0 {
				return constants.ErrDropletIDRequired
			}

			dropletID, err := parseDropletID(args[0])
			if err != nil {
				return err
			}

			neighbors, err := client.Droplets().Neighbors(ctx, dropletID)
			if err != nil {
				return fmt.Errorf("failed to list neighbors: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(neighbors)
			case OutputFormatYAML:
				return outputYAML(neighbors)
			default:
				if len(neighbors) == 0 {
					fmt.Println("No neighbors found")

					return nil
				}

				renderDropletsTable(neighbors)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&ids, "ids", false, "show the account-wide neighbor ID report")

	return cmd
}
