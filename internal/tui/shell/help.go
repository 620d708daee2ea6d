package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// helpMarkdown documents the shell keys, the active view's keys and the
// available designs.
func (m Model) helpMarkdown() string {
	var b strings.Builder

	b.WriteString("# Pricing Kit\n\n")
	b.WriteString("Browse interchangeable pricing page designs. Every design follows the light or dark scheme.\n\n")

	b.WriteString("## Keyboard\n\n")
	writeBindings(&b, m.keys.Next, m.keys.Prev, m.keys.Select, m.keys.Dark, m.keys.Menu, m.keys.Help, m.keys.Close, m.keys.Quit)
	km := m.viewport.KeyMap
	writeBindings(&b, km.Up, km.Down, km.PageUp, km.PageDown)
	b.WriteString("\n")

	if bindings := m.active.Bindings(); len(bindings) > 0 {
		fmt.Fprintf(&b, "## %s design\n\n", m.Active().DisplayName)
		writeBindings(&b, bindings...)
		b.WriteString("\n")
	}

	b.WriteString("## Designs\n\n")
	for i, d := range m.registry.All() {
		fmt.Fprintf(&b, "%d. **%s** (%s accent)\n", i+1, d.DisplayName, d.Accent)
	}
	return b.String()
}

func writeBindings(b *strings.Builder, bindings ...key.Binding) {
	for _, binding := range bindings {
		h := binding.Help()
		if h.Key == "" {
			continue
		}
		fmt.Fprintf(b, "- `%s` %s\n", h.Key, h.Desc)
	}
}

// renderHelp renders the keyboard reference with glamour, matching the
// colour scheme. It falls back to the raw markdown if rendering fails.
func (m Model) renderHelp() string {
	md := m.helpMarkdown()

	style := "light"
	if m.state.DarkMode {
		style = "dark"
	}
	profile := lipgloss.ColorProfile()
	if m.renderer != nil {
		profile = m.renderer.ColorProfile()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(m.width-4, 20)),
		glamour.WithColorProfile(profile),
	)
	if err != nil {
		m.log.Error(err, "help renderer")
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.log.Error(err, "help render")
		return md
	}
	return out
}
