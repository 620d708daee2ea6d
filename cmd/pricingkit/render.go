package main

import (
	"github.com/spf13/cobra"
)

type renderOptions struct {
	yearly bool
	faq    int
	width  int
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [variant]",
		Short: "Print one design as a static snapshot",
		Long: `Render a single design to stdout without starting the interactive gallery.
Unknown variants fall back to the default design. Colours are only emitted
when stdout is a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := app.Config.Variant
			if len(args) == 1 {
				variant = args[0]
			}

			log, err := app.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return writeSnapshot(cmd.OutOrStdout(), app.Registry, snapshotOptions{
				Variant:  variant,
				DarkMode: app.Config.DarkMode,
				Yearly:   opts.yearly,
				FAQ:      opts.faq,
				Width:    opts.width,
				Log:      log,
			})
		},
	}

	cmd.Flags().BoolVar(&opts.yearly, "yearly", false, "Show yearly billing (centered design)")
	cmd.Flags().IntVar(&opts.faq, "faq", 0, "Expand FAQ entry N, counting from 1 (split design)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Render width in columns (default 100)")

	return cmd
}
