package variants

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// Classic is three side-by-side plan cards with a trust strip.
type Classic struct {
	frame
}

// NewClassic mounts the classic presentation.
func NewClassic(page catalog.Page, accent theme.AccentID, m Mount) *Classic {
	return &Classic{frame: newFrame(page, accent, m)}
}

// Update is a no-op; the classic layout has no local state.
func (c *Classic) Update(tea.Msg) tea.Cmd {
	return nil
}

// Render draws the page.
func (c *Classic) Render(p Props) string {
	ctx := c.context(p.DarkMode)

	cards := make([]planCard, 0, len(c.page.Plans))
	for _, plan := range c.page.Plans {
		cards = append(cards, planCard{plan: plan, label: c.page.PopularLabel})
	}

	trust := ""
	if c.page.TrustLine != "" {
		trust = section(
			center(ctx, components.Muted(c.page.TrustLine).ViewWithContext(ctx)),
			logos(ctx, c.page.Logos),
		)
	}

	return section(
		hero(ctx, c.page),
		planGrid(ctx, cards),
		trust,
	)
}
