package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricingkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Variant)
	assert.False(t, cfg.DarkMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.SSH.Host)
	assert.Equal(t, 23234, cfg.SSH.Port)
	assert.Equal(t, filepath.Clean(".ssh/pricingkit_ed25519"), cfg.SSH.HostKeyPath)
	assert.Equal(t, 10*time.Minute, cfg.SSH.IdleTimeout)
	assert.Equal(t, 32, cfg.SSH.MaxSessions)
	assert.Equal(t, "0.0.0.0:23234", cfg.SSH.Address())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
variant: split
dark: true
log_level: DEBUG
ssh:
  port: 2222
  idle_timeout: 90s
  max_sessions: 4
`)

	v := viper.New()
	v.Set(KeyConfigFile, path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "split", cfg.Variant)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2222, cfg.SSH.Port)
	assert.Equal(t, 90*time.Second, cfg.SSH.IdleTimeout)
	assert.Equal(t, 4, cfg.SSH.MaxSessions)
	assert.Equal(t, "0.0.0.0", cfg.SSH.Host, "unset keys keep their defaults")
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "variant: split\nssh:\n  port: 2222\n")
	t.Setenv("PRICINGKIT_VARIANT", "glass")
	t.Setenv("PRICINGKIT_SSH_PORT", "2200")

	v := viper.New()
	v.Set(KeyConfigFile, path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "glass", cfg.Variant)
	assert.Equal(t, 2200, cfg.SSH.Port)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	t.Setenv("PRICINGKIT_VARIANT", "glass")

	v := viper.New()
	v.Set(KeyVariant, "dark")
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Variant)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		value     any
		wantField string
	}{
		{"log level", KeyLogLevel, "loud", "log_level"},
		{"port too low", KeySSHPort, 0, "ssh.port"},
		{"port too high", KeySSHPort, 70000, "ssh.port"},
		{"sessions", KeySSHMaxSessions, 2048, "ssh.max_sessions"},
		{"idle timeout", KeySSHIdleTimeout, "0s", "ssh.idle_timeout"},
		{"host", KeySSHHost, "", "ssh.host"},
		{"host key", KeySSHHostKeyPath, "./", "ssh.host_key_path"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)

			var validationErr *pkerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyConfigFile, writeConfig(t, "ssh: [unclosed\n"))
	_, err := Load(v)
	require.Error(t, err)
}

func TestValidatorIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, validatorInstance(), validatorInstance())
}
