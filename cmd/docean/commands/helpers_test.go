package commands

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docean/pkg/docean"
)

func TestDisplayStatus(t *testing.T) {
	assert.Equal(t, "Active", displayStatus("active"))
	assert.Equal(t, "New", displayStatus("new"))
	assert.Equal(t, NotAvailable, displayStatus(""))
}

func TestJoinOrNA(t *testing.T) {
	assert.Equal(t, NotAvailable, joinOrNA(nil))
	assert.Equal(t, NotAvailable, joinOrNA([]string{}))
	assert.Equal(t, "web", joinOrNA([]string{"web"}))
	assert.Equal(t, "web, production", joinOrNA([]string{"web", "production"}))
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	viper.Set("config", path)

	t.Cleanup(func() { viper.Set("config", "") })

	err := saveConfig(&cliConfig{Token: "dop_v1_test", API: "https://api.example.com"})
	require.NoError(t, err)

	loaded := loadConfig()
	assert.Equal(t, "dop_v1_test", loaded.Token)
	assert.Equal(t, "https://api.example.com", loaded.API)
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Set("config", filepath.Join(t.TempDir(), "nope.yml"))

	t.Cleanup(func() { viper.Set("config", "") })

	loaded := loadConfig()
	assert.Empty(t, loaded.Token)
	assert.Empty(t, loaded.API)
}

func TestAppSpecNameAndPhase(t *testing.T) {
	app := &docean.App{}
	assert.Equal(t, NotAvailable, appSpecName(app))
	assert.Equal(t, NotAvailable, appPhase(app))

	app.Spec = &docean.AppSpec{Name: "sample"}
	app.ActiveDeployment = &docean.AppDeployment{Phase: "ACTIVE"}
	assert.Equal(t, "sample", appSpecName(app))
	assert.Equal(t, "ACTIVE", appPhase(app))
}
