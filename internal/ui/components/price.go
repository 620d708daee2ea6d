package components

import "github.com/charmbracelet/lipgloss"

// PriceTag renders an amount with its billing period and, when discounted,
// the struck-through original amount.
type PriceTag struct {
	BaseComponent
	amount   string
	period   string
	original string
}

// NewPriceTag creates a price display.
func NewPriceTag(amount, period string) *PriceTag {
	return &PriceTag{
		BaseComponent: NewBaseComponent(),
		amount:        amount,
		period:        period,
	}
}

// View renders the price.
func (p *PriceTag) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the price with the given context.
func (p *PriceTag) ViewWithContext(ctx RenderContext) string {
	amount := p.ComputeStyle(ctx).Bold(true).Render(p.amount)
	period := ctx.NewStyle().Foreground(ctx.RoleColor(RoleTextMuted)).Render(p.period)
	line := lipgloss.JoinHorizontal(lipgloss.Bottom, amount, period)
	if p.original == "" {
		return line
	}

	was := ctx.NewStyle().
		Foreground(ctx.RoleColor(RoleTextMuted)).
		Strikethrough(true).
		Render("was " + p.original + p.period)
	return lipgloss.JoinVertical(lipgloss.Left, line, was)
}

// WithOriginal shows the undiscounted amount.
func (p *PriceTag) WithOriginal(original string) *PriceTag {
	p.original = original
	return p
}

// WithAppliers styles the amount.
func (p *PriceTag) WithAppliers(appliers ...StyleFunc) *PriceTag {
	p.AddAppliers(appliers...)
	return p
}
