package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Checklist renders items prefixed with a marker in the accent colour.
type Checklist struct {
	BaseComponent
	items  []string
	marker string
	inline bool
}

// NewChecklist creates a check-marked list.
func NewChecklist(items ...string) *Checklist {
	return &Checklist{
		BaseComponent: NewBaseComponent(),
		items:         items,
		marker:        "✓",
	}
}

// View renders the list.
func (c *Checklist) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the list with the given context.
func (c *Checklist) ViewWithContext(ctx RenderContext) string {
	markStyle := ctx.NewStyle().Foreground(ctx.RoleColor(RoleAccent)).Bold(true)
	itemStyle := c.ComputeStyle(ctx)
	if !c.inline && ctx.Width > 2 {
		itemStyle = itemStyle.Width(ctx.Width - 2)
	}

	rows := make([]string, 0, len(c.items))
	for _, item := range c.items {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			markStyle.Render(c.marker+" "),
			itemStyle.Render(item),
		))
	}
	if c.inline {
		return strings.Join(rows, "   ")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// WithMarker replaces the check mark.
func (c *Checklist) WithMarker(marker string) *Checklist {
	c.marker = marker
	return c
}

// Inline lays the items out on one line.
func (c *Checklist) Inline() *Checklist {
	c.inline = true
	return c
}

// WithAppliers styles the item text.
func (c *Checklist) WithAppliers(appliers ...StyleFunc) *Checklist {
	c.AddAppliers(appliers...)
	return c
}
