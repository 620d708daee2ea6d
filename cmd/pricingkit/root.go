package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/devlance074/pricing-ui-kit/internal/config"
	"github.com/devlance074/pricing-ui-kit/internal/tui/shell"
)

func newRootCmd() *cobra.Command {
	app := newAppContext()

	cmd := &cobra.Command{
		Use:           "pricingkit",
		Short:         "Browse five pricing page designs in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to a YAML config file")
	flags.String("variant", "", "Design to open with (classic, glass, centered, split, dark)")
	flags.Bool("dark", false, "Start in dark mode")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write JSON logs to this file")
	flags.String("catalog", "", "Load plan content from this YAML file instead of the built-in catalog")
	bindFlags(app.v, flags, map[string]string{
		"config":    config.KeyConfigFile,
		"variant":   config.KeyVariant,
		"dark":      config.KeyDarkMode,
		"log-level": config.KeyLogLevel,
		"log-file":  config.KeyLogFile,
		"catalog":   config.KeyCatalog,
	})

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newVariantsCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runGallery(cmd *cobra.Command, app *AppContext) error {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return writeSnapshot(out, app.Registry, snapshotOptions{
			Variant:  app.Config.Variant,
			DarkMode: app.Config.DarkMode,
		})
	}

	log, err := app.Logger(nil)
	if err != nil {
		return err
	}

	m := shell.NewModel(app.Registry, shell.Options{
		Variant:  app.Config.Variant,
		DarkMode: app.Config.DarkMode,
		Logger:   log,
	})
	log.WithFields(map[string]any{
		"variant":   m.State().ActiveVariantID,
		"dark_mode": m.State().DarkMode,
	}).Info("launching gallery")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery exited")
		return fmt.Errorf("run gallery: %w", err)
	}

	log.Info("gallery closed")
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
