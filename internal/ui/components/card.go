package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/ui"
)

// Card is a bordered box for grouped content. A highlighted card draws a
// thick border in the ring colour and may carry a badge above it.
type Card struct {
	BaseComponent
	children  []ui.Renderable
	badge     *Badge
	highlight bool
	width     int
	gap       int
	padding   Spacing
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
		padding:       SymmetricSpacing(1, 2),
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card and its children with the given context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	width := c.width
	if width <= 0 {
		width = ctx.Width
	}

	style := ctx.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.RoleColor(RoleBorder)).
		Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	if c.highlight {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(ctx.RoleColor(RoleRing))
	}
	if c.strategy != nil {
		style = c.strategy.Apply(style, ctx)
	}

	inner := ctx
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
		inner = ctx.WithWidth(width - style.GetHorizontalFrameSize())
	}

	views := make([]string, 0, len(c.children)*2)
	for i, child := range c.children {
		view := Render(child, inner)
		if view == "" {
			continue
		}
		if i > 0 && c.gap > 0 && len(views) > 0 {
			for g := 0; g < c.gap; g++ {
				views = append(views, "")
			}
		}
		views = append(views, view)
	}
	box := style.Render(lipgloss.JoinVertical(lipgloss.Left, views...))

	if c.badge == nil {
		return box
	}
	badge := ctx.NewStyle().
		Width(lipgloss.Width(box)).
		Align(lipgloss.Center).
		Render(c.badge.ViewWithContext(ctx))
	return lipgloss.JoinVertical(lipgloss.Left, badge, box)
}

// WithHighlight marks the card as featured.
func (c *Card) WithHighlight(highlight bool) *Card {
	c.highlight = highlight
	return c
}

// WithBadge places a badge centred above the card.
func (c *Card) WithBadge(badge *Badge) *Card {
	c.badge = badge
	return c
}

// WithWidth fixes the outer width of the card, borders included.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithGap inserts blank lines between children.
func (c *Card) WithGap(gap int) *Card {
	c.gap = gap
	return c
}

// WithAppliers applies token-based style modifiers to the card frame.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Highlighted reports whether the card is featured.
func (c *Card) Highlighted() bool {
	return c.highlight
}
