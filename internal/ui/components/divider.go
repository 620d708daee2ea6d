package components

import "strings"

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
	label string
}

// NewDivider creates a divider in the border colour.
func NewDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	d.SetAppliers(Foreground(RoleBorder))
	return d
}

// AccentDivider creates a heavy rule in the accent fill colour.
func AccentDivider() *Divider {
	d := NewDivider().WithChar("━")
	d.SetAppliers(Foreground(RoleAccentFill))
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider across the context width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = 40
	}

	line := strings.Repeat(d.char, width)
	if d.label != "" && width > len(d.label)+4 {
		side := (width - len([]rune(d.label)) - 2) / 2
		line = strings.Repeat(d.char, side) + " " + d.label + " " +
			strings.Repeat(d.char, width-side-len([]rune(d.label))-2)
	}
	return d.ComputeStyle(ctx).Render(line)
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the rule width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithLabel centres a label inside the rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}
