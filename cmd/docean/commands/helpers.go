package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/docean/internal/constants"
	"github.com/fivetwenty-io/docean/pkg/docean"
	"github.com/fivetwenty-io/docean/pkg/doclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	// JSON formatting.
	defaultJSONIndent = "  "
)

var titleCaser = cases.Title(language.English)

// createClient builds a DigitalOcean API client from the effective
// configuration (flags, environment, config file).
func createClient(ctx context.Context) (docean.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoAccessToken
	}

	config := &docean.Config{
		AccessToken: token,
		APIEndpoint: viper.GetString("api"),
		UserAgent:   "docean-cli",
		Debug:       viper.GetBool("verbose"),
	}

	client, err := doclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes data to stdout as indented JSON.
func outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// outputYAML writes data to stdout as YAML.
func outputYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// displayStatus formats a resource status for table output ("active" becomes
// "Active", empty becomes "N/A").
func displayStatus(status string) string {
	if status == "" {
		return NotAvailable
	}

	return titleCaser.String(status)
}

// joinOrNA joins a string slice for table output, or N/A when empty.
func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}

	return strings.Join(values, ", ")
}

// cliConfig is the persisted CLI configuration in ~/.docean/config.yml.
type cliConfig struct {
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
	API   string `json:"api,omitempty"   yaml:"api,omitempty"`
}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".docean", "config.yml"), nil
}

// saveConfig writes the CLI configuration, creating the config directory on
// first use.
func saveConfig(config *cliConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// loadConfig reads the persisted CLI configuration. A missing file yields an
// empty config.
func loadConfig() *cliConfig {
	config := &cliConfig{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own --config flag or home directory
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}
