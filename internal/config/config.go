package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

// EnvPrefix namespaces environment overrides, e.g. PRICINGKIT_SSH_PORT.
const EnvPrefix = "PRICINGKIT"

// Keys shared with the command line flags.
const (
	KeyConfigFile     = "config"
	KeyVariant        = "variant"
	KeyDarkMode       = "dark"
	KeyLogLevel       = "log_level"
	KeyLogFile        = "log_file"
	KeyCatalog        = "catalog"
	KeySSHHost        = "ssh.host"
	KeySSHPort        = "ssh.port"
	KeySSHHostKeyPath = "ssh.host_key_path"
	KeySSHIdleTimeout = "ssh.idle_timeout"
	KeySSHMaxSessions = "ssh.max_sessions"
)

// Config seeds the initial gallery state and the serving parameters.
// Nothing is ever written back.
type Config struct {
	Variant  string `mapstructure:"variant"`
	DarkMode bool   `mapstructure:"dark"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFile  string `mapstructure:"log_file"`
	Catalog  string `mapstructure:"catalog"`
	SSH      SSH    `mapstructure:"ssh"`
}

// SSH configures the wish server.
type SSH struct {
	Host        string        `mapstructure:"host" validate:"required"`
	Port        int           `mapstructure:"port" validate:"min=1,max=65535"`
	HostKeyPath string        `mapstructure:"host_key_path" validate:"required,host_key_path"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	MaxSessions int           `mapstructure:"max_sessions" validate:"min=1,max=1024"`
}

// Address joins host and port.
func (s SSH) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyVariant, "")
	v.SetDefault(KeyDarkMode, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeySSHHost, "0.0.0.0")
	v.SetDefault(KeySSHPort, 23234)
	v.SetDefault(KeySSHHostKeyPath, ".ssh/pricingkit_ed25519")
	v.SetDefault(KeySSHIdleTimeout, 10*time.Minute)
	v.SetDefault(KeySSHMaxSessions, 32)
}

// Load resolves the configuration from defaults, an optional YAML file named
// by the "config" key, PRICINGKIT_* environment variables and any flags
// already bound to v, in increasing order of precedence.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return Config{}, pkerrors.NewParseError(path, 0, err)
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.SSH.HostKeyPath = filepath.Clean(cfg.SSH.HostKeyPath)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
