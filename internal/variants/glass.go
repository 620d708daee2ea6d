package variants

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// Glass is a frosted layout over a deep gradient with white text in both
// modes and a colour gradient per plan.
type Glass struct {
	frame
}

// NewGlass mounts the glass presentation.
func NewGlass(page catalog.Page, accent theme.AccentID, m Mount) *Glass {
	return &Glass{frame: newFrame(page, accent, m)}
}

// Update is a no-op; the glass layout has no local state.
func (g *Glass) Update(tea.Msg) tea.Cmd {
	return nil
}

// glassSurface keeps text white on a purple night sky, or charcoal in dark
// mode.
func glassSurface(dark bool) theme.Surface {
	if dark {
		return theme.Surface{
			Dark:          true,
			Page:          theme.T(theme.FamilyGray, theme.Shade900),
			Card:          theme.T(theme.FamilyGray, theme.Shade800).Alpha(30),
			Border:        theme.T(theme.FamilyGray, theme.Shade600).Alpha(30),
			TextPrimary:   theme.T(theme.FamilyWhite, theme.Shade500),
			TextSecondary: theme.T(theme.FamilyGray, theme.Shade300),
			TextMuted:     theme.T(theme.FamilyGray, theme.Shade400),
		}
	}
	return theme.Surface{
		Page:          theme.T(theme.FamilyPurple, theme.Shade900),
		Card:          theme.T(theme.FamilyWhite, theme.Shade500).Alpha(10),
		Border:        theme.T(theme.FamilyWhite, theme.Shade500).Alpha(20),
		TextPrimary:   theme.T(theme.FamilyWhite, theme.Shade500),
		TextSecondary: theme.T(theme.FamilyBlue, theme.Shade100),
		TextMuted:     theme.T(theme.FamilyBlue, theme.Shade200),
	}
}

// Render draws the page.
func (g *Glass) Render(p Props) string {
	ctx := g.context(p.DarkMode).WithSurface(glassSurface(p.DarkMode))

	cards := make([]planCard, 0, len(g.page.Plans))
	for _, plan := range g.page.Plans {
		plan := plan
		from, to := swatchPair(plan.Swatch)
		cards = append(cards, planCard{
			plan:   plan,
			label:  g.page.PopularLabel,
			header: gradientBar{from: from, to: to},
			button: components.NewButton(plan.CTA).Full().
				WithAppliers(components.BackgroundToken(to)),
			badge: func(label string) *components.Badge {
				return components.NewBadge(label).WithAppliers(
					components.BackgroundToken(theme.T(theme.FamilyYellow, theme.Shade400)),
					components.ForegroundToken(theme.T(theme.FamilyBlack, theme.Shade500)),
				)
			},
		})
	}

	footer := make([]string, 0, len(g.page.Footnotes)+1)
	for _, note := range g.page.Footnotes {
		footer = append(footer, center(ctx, components.Muted(note).ViewWithContext(ctx)))
	}
	if len(g.page.Badges) > 0 {
		footer = append(footer, center(ctx,
			components.NewChecklist(g.page.Badges...).
				WithMarker("◆").
				Inline().
				WithAppliers(components.Foreground(components.RoleTextSecondary)).
				ViewWithContext(ctx),
		))
	}

	return section(
		hero(ctx, g.page),
		planGrid(ctx, cards),
		lipgloss.JoinVertical(lipgloss.Left, footer...),
	)
}

// swatchPair returns the gradient endpoints, defaulting to the accent range.
func swatchPair(swatch []string) (theme.Token, theme.Token) {
	from := theme.T(theme.FamilyPurple, theme.Shade400)
	to := theme.T(theme.FamilyPurple, theme.Shade600)
	if len(swatch) > 0 {
		if tok, err := theme.ParseToken(swatch[0]); err == nil {
			from, to = tok, tok
		}
	}
	if len(swatch) > 1 {
		if tok, err := theme.ParseToken(swatch[1]); err == nil {
			to = tok
		}
	}
	return from, to
}

// gradientBar is a full-width rule blended from one token to another.
type gradientBar struct {
	from, to theme.Token
}

var _ components.ContextualRenderable = gradientBar{}

func (b gradientBar) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b gradientBar) ViewWithContext(ctx components.RenderContext) string {
	width := ctx.Width
	if width <= 0 {
		width = minCardWidth
	}
	start, err1 := colorful.Hex(string(ctx.Color(b.from)))
	end, err2 := colorful.Hex(string(ctx.Color(b.to)))
	if err1 != nil || err2 != nil {
		return strings.Repeat("▀", width)
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := start.BlendLuv(end, t).Clamped()
		sb.WriteString(ctx.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("▀"))
	}
	return sb.String()
}

var _ ui.Renderable = gradientBar{}
