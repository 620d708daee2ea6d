package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootWithoutTerminalPrintsSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		headline string
	}{
		{"default design", nil, "Simple, Transparent Pricing"},
		{"variant flag", []string{"--variant", "split"}, "Creative tools for modern teams"},
		{"unknown variant", []string{"--variant", "nonexistent"}, "Simple, Transparent Pricing"},
		{"dark tech", []string{"--variant", "dark", "--dark"}, "Developer-First Platform"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := executeCommand(tt.args...)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.headline)
		})
	}
}

func TestRootReadsConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pricingkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: glass\n"), 0o600))

	stdout, _, err := executeCommand("--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Unleash Your Creativity")

	// flags beat the file
	stdout, _, err = executeCommand("--config", path, "--variant", "centered")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Choose Your Plan")
}

func TestRootRejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"log level", []string{"--log-level", "loud"}, "log_level"},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, "absent.yaml"},
		{"missing catalog", []string{"--catalog", filepath.Join(t.TempDir(), "catalog.yaml")}, "load catalog"},
		{"serve port", []string{"serve", "--port", "70000"}, "ssh.port"},
		{"serve sessions", []string{"serve", "--max-sessions", "5000"}, "ssh.max_sessions"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := executeCommand(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogWithoutEveryVariantIsRejected(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `pages:
  classic:
    headline: Plans
    popular_label: Most Popular
    plans:
      - name: Starter
        price: $9
        period: /month
        description: For individuals
        features: [One project]
        cta: Get Started
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, _, err := executeCommand("--catalog", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build variant registry")
	assert.Contains(t, err.Error(), "pages.glass")
}

func TestLogFileReceivesRenderWarnings(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "pricingkit.log")
	_, stderr, err := executeCommand("--log-file", logPath, "render", "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"requested":"nonexistent"`)
	assert.Contains(t, string(data), `"fallback":"classic"`)
}
