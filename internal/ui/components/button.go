package components

import "github.com/charmbracelet/lipgloss"

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantOutline
)

// Button is a call-to-action label. It is visual only.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	fill    bool
}

// NewButton creates a new primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx).Render(b.label)
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	style := ctx.NewStyle().Padding(0, 2).Bold(true).Align(lipgloss.Center)

	switch b.variant {
	case ButtonVariantSecondary:
		style = style.
			Background(ctx.RoleColor(RoleBorder)).
			Foreground(ctx.RoleColor(RoleText))
	case ButtonVariantOutline:
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ctx.RoleColor(RoleRing)).
			Foreground(ctx.RoleColor(RoleAccent))
	default:
		style = style.
			Background(ctx.RoleColor(RoleAccentFill)).
			Foreground(ctx.RoleColor(RoleOnAccent))
	}

	if b.fill && ctx.Width > 0 {
		width := ctx.Width
		if b.variant == ButtonVariantOutline {
			width -= 2
		}
		style = style.Width(width)
	}
	if b.strategy != nil {
		style = b.strategy.Apply(style, ctx)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// Full stretches the button to the context width.
func (b *Button) Full() *Button {
	b.fill = true
	return b
}

// WithAppliers applies token-based style modifiers after the variant.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}
