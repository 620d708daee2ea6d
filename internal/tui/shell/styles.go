package shell

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// chromeStyles are rebuilt per render because they follow the active accent
// and the colour scheme.
type chromeStyles struct {
	chip       lipgloss.Style
	brand      lipgloss.Style
	tagline    lipgloss.Style
	mode       lipgloss.Style
	tab        lipgloss.Style
	menuButton lipgloss.Style
	menuItem   lipgloss.Style
	menuActive lipgloss.Style
	status     lipgloss.Style
	statusName lipgloss.Style
}

func newChromeStyles(ctx components.RenderContext) chromeStyles {
	text := ctx.RoleColor(components.RoleText)
	secondary := ctx.RoleColor(components.RoleTextSecondary)
	muted := ctx.RoleColor(components.RoleTextMuted)
	accent := ctx.RoleColor(components.RoleAccent)

	return chromeStyles{
		chip: ctx.NewStyle().
			Background(ctx.RoleColor(components.RoleAccentFill)).
			Foreground(ctx.RoleColor(components.RoleOnAccent)).
			Bold(true).
			Padding(0, 1),
		brand: ctx.NewStyle().
			Foreground(text).
			Bold(true),
		tagline: ctx.NewStyle().
			Foreground(muted),
		mode: ctx.NewStyle().
			Foreground(secondary).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ctx.RoleColor(components.RoleBorder)).
			Padding(0, 1),
		tab: ctx.NewStyle().
			Foreground(secondary).
			Padding(0, 1),
		menuButton: ctx.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),
		menuItem: ctx.NewStyle().
			Foreground(secondary).
			PaddingLeft(2),
		menuActive: ctx.NewStyle().
			Background(ctx.RoleColor(components.RoleAccentHover)).
			Foreground(ctx.RoleColor(components.RoleOnAccent)).
			Bold(true),
		status: ctx.NewStyle().
			Foreground(muted),
		statusName: ctx.NewStyle().
			Foreground(accent).
			Bold(true),
	}
}

// activeTab paints a tab in its own variant's accent.
func activeTab(ctx components.RenderContext, accent theme.AccentID) lipgloss.Style {
	tokens := theme.Resolve(accent, ctx.Dark())
	return ctx.NewStyle().
		Background(ctx.Color(tokens.Background)).
		Foreground(ctx.RoleColor(components.RoleOnAccent)).
		Bold(true).
		Padding(0, 1)
}

func helpStyles(ctx components.RenderContext) help.Styles {
	key := ctx.NewStyle().Foreground(ctx.RoleColor(components.RoleTextSecondary)).Bold(true)
	desc := ctx.NewStyle().Foreground(ctx.RoleColor(components.RoleTextMuted))
	sep := ctx.NewStyle().Foreground(ctx.RoleColor(components.RoleBorder))
	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}
