package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/docean/internal/constants"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// NewAppsCommand creates the apps command group
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"app"},
		Short:   "Manage App Platform apps",
		Long:    "List, create, and manage DigitalOcean App Platform apps",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsGetCommand())
	cmd.AddCommand(newAppsCreateCommand())
	cmd.AddCommand(newAppsUpdateCommand())
	cmd.AddCommand(newAppsDeleteCommand())

	return cmd
}

// readAppSpec loads an app spec from a YAML or JSON file.
func readAppSpec(path string) (*docean.AppSpec, error) {
	if path == "" {
		return nil, constants.ErrSpecFileRequired
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec docean.AppSpec

	err = yaml.Unmarshal(data, &spec)
	if err != nil {
		return nil, fmt.Errorf("parsing spec file: %w", err)
	}

	return &spec, nil
}

func appPhase(app *docean.App) string {
	if app.ActiveDeployment != nil {
		return app.ActiveDeployment.Phase
	}

	if app.InProgressDeployment != nil {
		return app.InProgressDeployment.Phase
	}

	return NotAvailable
}

func appSpecName(app *docean.App) string {
	if app.Spec == nil {
		return NotAvailable
	}

	return app.Spec.Name
}

func renderAppsTable(apps []docean.App) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Phase", "Ingress", "Created")

	for idx := range apps {
		app := &apps[idx]

		ingress := app.DefaultIngress
		if ingress == "" {
			ingress = NotAvailable
		}

		_ = table.Append(app.ID, appSpecName(app), appPhase(app), ingress, app.CreatedAt)
	}

	_ = table.Render()
}

func newAppsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apps",
		Long:  "List all App Platform apps in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			apps, err := client.Apps().List(ctx, docean.NewListParams().WithPage(page).WithPerPage(perPage))
			if err != nil {
				return fmt.Errorf("failed to list apps: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(apps.Resources)
			case OutputFormatYAML:
				return outputYAML(apps.Resources)
			default:
				if len(apps.Resources) == 0 {
					fmt.Println("No apps found")

					return nil
				}

				renderAppsTable(apps.Resources)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newAppsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APP_ID",
		Short: "Get app details",
		Long:  "Display detailed information about a single app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			app, err := client.Apps().Get(ctx, args[0])
			if err != nil {
				if docean.IsNotFound(err) {
					return fmt.Errorf("app %q not found: %w", args[0], err)
				}

				return fmt.Errorf("failed to get app: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(app)
			case OutputFormatYAML:
				return outputYAML(app)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", app.ID)
				_ = table.Append("Name", appSpecName(app))
				_ = table.Append("Phase", appPhase(app))
				_ = table.Append("Tier", app.TierSlug)

				if app.Region != nil {
					_ = table.Append("Region", app.Region.Slug)
				}

				if app.DefaultIngress != "" {
					_ = table.Append("Ingress", app.DefaultIngress)
				}

				if app.LiveURL != "" {
					_ = table.Append("Live URL", app.LiveURL)
				}

				_ = table.Append("Created", app.CreatedAt)
				_ = table.Append("Updated", app.UpdatedAt)
				_ = table.Render()
			}

			return nil
		},
	}
}

func newAppsCreateCommand() *cobra.Command {
	var specFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an app",
		Long:  "Create an App Platform app from a spec file",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readAppSpec(specFile)
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			app, err := client.Apps().Create(ctx, &docean.AppCreateRequest{Spec: spec})
			if err != nil {
				return fmt.Errorf("failed to create app: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(app)
			case OutputFormatYAML:
				return outputYAML(app)
			default:
				fmt.Fprintf(os.Stdout, "Created app %s (%s)\n", appSpecName(app), app.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&specFile, "spec", "", "path to the app spec file (YAML or JSON)")

	return cmd
}

func newAppsUpdateCommand() *cobra.Command {
	var specFile string

	cmd := &cobra.Command{
		Use:   "update APP_ID",
		Short: "Update an app",
		Long:  "Replace an app's spec with the contents of a spec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readAppSpec(specFile)
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			app, err := client.Apps().Update(ctx, args[0], &docean.AppUpdateRequest{Spec: spec})
			if err != nil {
				return fmt.Errorf("failed to update app: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(app)
			case OutputFormatYAML:
				return outputYAML(app)
			default:
				fmt.Fprintf(os.Stdout, "Updated app %s (%s)\n", appSpecName(app), app.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&specFile, "spec", "", "path to the app spec file (YAML or JSON)")

	return cmd
}

func newAppsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete APP_ID",
		Short: "Delete an app",
		Long:  "Permanently delete an App Platform app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.Apps().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete app: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted app %s\n", args[0])

			return nil
		},
	}
}
