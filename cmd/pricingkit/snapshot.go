package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/logger"
	"github.com/devlance074/pricing-ui-kit/internal/variants"
)

type snapshotOptions struct {
	Variant  string
	DarkMode bool
	Yearly   bool
	// FAQ is the 1-based split FAQ entry to expand; zero leaves all closed.
	FAQ   int
	Width int
	Log   *logger.Logger
}

// writeSnapshot mounts a variant for w, replays the requested view actions
// and writes one frame.
func writeSnapshot(w io.Writer, reg *variants.Registry, opts snapshotOptions) error {
	desc, err := reg.Resolve(opts.Variant)
	if err != nil {
		opts.Log.WithFields(map[string]any{
			"requested": opts.Variant,
			"fallback":  desc.ID,
		}).Warn(err.Error())
	}

	view := desc.New(variants.Mount{
		Renderer: lipgloss.NewRenderer(w),
		Width:    opts.Width,
	})

	if opts.Yearly {
		if c, ok := view.(*variants.Centered); ok && !c.Yearly() {
			c.ToggleBilling()
		} else if !ok {
			opts.Log.WithFields(map[string]any{"variant": desc.ID}).Warn("variant has no billing toggle")
		}
	}
	if opts.FAQ > 0 {
		view.Update(variants.ToggleFAQMsg{Index: opts.FAQ - 1})
	}

	if _, err := fmt.Fprintln(w, view.Render(variants.Props{DarkMode: opts.DarkMode})); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
