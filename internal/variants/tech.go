package variants

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// Tech is a developer-facing layout on a near-black canvas with platform
// highlights, trust logos and a closing call to action.
type Tech struct {
	frame
}

// NewTech mounts the tech presentation.
func NewTech(page catalog.Page, accent theme.AccentID, m Mount) *Tech {
	return &Tech{frame: newFrame(page, accent, m)}
}

// Update is a no-op; the tech layout has no local state.
func (t *Tech) Update(tea.Msg) tea.Cmd {
	return nil
}

// techSurface is dark in both modes; dark mode goes fully black.
func techSurface(dark bool) theme.Surface {
	if dark {
		return theme.Surface{
			Dark:          true,
			Page:          theme.T(theme.FamilyBlack, theme.Shade500),
			Card:          theme.T(theme.FamilyGray, theme.Shade900).Alpha(80),
			Border:        theme.T(theme.FamilyGray, theme.Shade800),
			TextPrimary:   theme.T(theme.FamilyWhite, theme.Shade500),
			TextSecondary: theme.T(theme.FamilyGray, theme.Shade200),
			TextMuted:     theme.T(theme.FamilyGray, theme.Shade300),
		}
	}
	return theme.Surface{
		Page:          theme.T(theme.FamilyGray, theme.Shade900),
		Card:          theme.T(theme.FamilyGray, theme.Shade800).Alpha(50),
		Border:        theme.T(theme.FamilyGray, theme.Shade700).Alpha(50),
		TextPrimary:   theme.T(theme.FamilyWhite, theme.Shade500),
		TextSecondary: theme.T(theme.FamilyGray, theme.Shade300),
		TextMuted:     theme.T(theme.FamilyGray, theme.Shade400),
	}
}

// Render draws the page.
func (t *Tech) Render(p Props) string {
	ctx := t.context(p.DarkMode).WithSurface(techSurface(p.DarkMode))

	glow := theme.T(theme.FamilyCyan, theme.Shade300)
	if !p.DarkMode {
		glow = theme.T(theme.FamilyCyan, theme.Shade400)
	}

	cards := make([]planCard, 0, len(t.page.Plans))
	for _, plan := range t.page.Plans {
		icon := plan.Icon
		plan.Icon = ""
		cards = append(cards, planCard{
			plan:  plan,
			label: t.page.PopularLabel,
			header: components.NewText(icon).
				WithAppliers(components.ForegroundToken(glow), components.Bold()),
			badge: func(label string) *components.Badge {
				return components.NewBadge(label).WithAppliers(
					components.ForegroundToken(theme.T(theme.FamilyBlack, theme.Shade500)),
				)
			},
		})
	}

	return section(
		hero(ctx, t.page),
		t.renderHighlights(ctx, glow),
		planGrid(ctx, cards),
		t.renderTrust(ctx),
		t.renderCallToAction(ctx),
	)
}

func (t *Tech) renderHighlights(ctx components.RenderContext, glow theme.Token) string {
	if len(t.page.Highlights) == 0 {
		return ""
	}
	cols := columns(ctx.Width, len(t.page.Highlights), 28)
	width := cardWidth(ctx.Width, cols)
	itemCtx := ctx.WithWidth(width)

	blocks := make([]string, 0, len(t.page.Highlights))
	for _, h := range t.page.Highlights {
		blocks = append(blocks, components.NewCard(
			components.NewText(h.Icon).WithAppliers(components.ForegroundToken(glow)),
			components.Heading(h.Title),
			components.Muted(h.Description).Wrapped(),
		).WithWidth(width).
			WithAppliers(components.BorderToken(theme.T(theme.FamilyCyan, theme.Shade500).Alpha(30))).
			ViewWithContext(itemCtx))
	}
	return center(ctx, grid(blocks, cols))
}

func (t *Tech) renderTrust(ctx components.RenderContext) string {
	if t.page.TrustLine == "" {
		return ""
	}
	return section(
		center(ctx, components.Muted(t.page.TrustLine).ViewWithContext(ctx)),
		logos(ctx, t.page.Logos),
	)
}

func (t *Tech) renderCallToAction(ctx components.RenderContext) string {
	cta := t.page.CallToAction
	if cta == nil {
		return ""
	}

	buttons := make([]string, 0, len(cta.Actions)*2)
	for i, action := range cta.Actions {
		b := components.NewButton(action)
		if i > 0 {
			b.WithVariant(components.ButtonVariantOutline)
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, b.ViewWithContext(ctx))
	}

	body := []string{
		components.Heading(cta.Title).ViewWithContext(ctx),
	}
	if cta.Subtitle != "" {
		body = append(body, components.Muted(cta.Subtitle).ViewWithContext(ctx))
	}
	body = append(body, "", lipgloss.JoinHorizontal(lipgloss.Center, buttons...))
	if len(t.page.Footnotes) > 0 {
		body = append(body, "", components.NewChecklist(t.page.Footnotes...).Inline().
			WithAppliers(components.Foreground(components.RoleTextMuted)).
			ViewWithContext(ctx))
	}

	width := ctx.Width
	if width > proseWidth {
		width = proseWidth
	}
	panel := components.NewCard(
		renderedBlock(lipgloss.JoinVertical(lipgloss.Center, body...)),
	).WithWidth(width).
		WithAppliers(components.BorderToken(theme.T(theme.FamilyCyan, theme.Shade500).Alpha(20))).
		ViewWithContext(ctx)
	return center(ctx, panel)
}
