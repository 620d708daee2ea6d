package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small pill-shaped label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	// BadgeVariantFilled paints the accent background with light text.
	BadgeVariantFilled BadgeVariant = iota
	// BadgeVariantSoft paints the light accent background with accent text.
	BadgeVariantSoft
	// BadgeVariantOutline draws accent text with no background.
	BadgeVariantOutline
)

// NewBadge creates a new filled badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx).Render(b.text)
}

func (b *Badge) computeStyle(ctx RenderContext) lipgloss.Style {
	style := ctx.NewStyle().Padding(0, 1).Bold(true)
	switch b.variant {
	case BadgeVariantSoft:
		style = style.
			Background(ctx.RoleColor(RoleAccentSoft)).
			Foreground(ctx.RoleColor(RoleAccent))
	case BadgeVariantOutline:
		style = style.Foreground(ctx.RoleColor(RoleAccent))
	default:
		style = style.
			Background(ctx.RoleColor(RoleAccentFill)).
			Foreground(ctx.RoleColor(RoleOnAccent))
	}
	if b.strategy != nil {
		style = b.strategy.Apply(style, ctx)
	}
	return style
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies token-based style modifiers after the variant.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SoftBadge creates a light accent badge.
func SoftBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSoft)
}
