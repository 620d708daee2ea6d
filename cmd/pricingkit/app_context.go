package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/config"
	"github.com/devlance074/pricing-ui-kit/internal/logger"
	"github.com/devlance074/pricing-ui-kit/internal/variants"
)

// AppContext bundles the services a command needs once flags are parsed.
type AppContext struct {
	v        *viper.Viper
	Config   config.Config
	Registry *variants.Registry

	closers []io.Closer
}

func newAppContext() *AppContext {
	return &AppContext{v: viper.New()}
}

// load resolves configuration and builds the variant registry.
func (a *AppContext) load() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.Config = cfg

	cat := catalog.Default()
	if cfg.Catalog != "" {
		if cat, err = catalog.LoadFile(cfg.Catalog); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}

	reg, err := variants.NewGallery(cat)
	if err != nil {
		return fmt.Errorf("build variant registry: %w", err)
	}
	a.Registry = reg
	return nil
}

// Logger writes JSON to the configured log file. Without one it writes
// human-readable lines to fallback, or nowhere when fallback is nil.
func (a *AppContext) Logger(fallback io.Writer) (*logger.Logger, error) {
	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		return logger.New(logger.Options{Level: a.Config.LogLevel, Writer: f})
	}

	if fallback == nil {
		return logger.Discard(), nil
	}
	return logger.New(logger.Options{Level: a.Config.LogLevel, HumanReadable: true, Writer: fallback})
}

func (a *AppContext) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
