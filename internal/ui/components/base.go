package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style
}

// StyleFunc applies a styling transformation using the tokens carried by a
// RenderContext. This is the core abstraction for token-aware styling.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, ctx)
		}
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with no styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{strategy: CompositeStrategy{}}
}

// ComputeStyle returns the component style built on the context's renderer.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	base := ctx.NewStyle()
	if b.strategy == nil {
		return base
	}
	return b.strategy.Apply(base, ctx)
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A custom strategy is wrapped so it still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	wrapper := func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, ctx)
		}
		for _, applier := range appliers {
			base = applier(base, ctx)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Spacing represents spacing (padding or margin) around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// RenderContext carries everything a component needs to draw itself: the
// accent tokens, the neutral surface for the mode, the lipgloss renderer of
// the output terminal and the available width.
type RenderContext struct {
	Tokens   theme.TokenSet
	Surface  theme.Surface
	Renderer *lipgloss.Renderer
	Width    int
}

// NewContext resolves tokens for an accent and mode.
func NewContext(accent theme.AccentID, dark bool) RenderContext {
	return RenderContext{
		Tokens:  theme.Resolve(accent, dark),
		Surface: theme.ResolveSurface(dark),
	}
}

// DefaultContext returns a light indigo context on the default renderer.
func DefaultContext() RenderContext {
	return NewContext(theme.AccentIndigo, false)
}

// WithRenderer returns a copy drawing through r.
func (r RenderContext) WithRenderer(renderer *lipgloss.Renderer) RenderContext {
	r.Renderer = renderer
	return r
}

// WithWidth returns a copy constrained to width columns.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// WithSurface returns a copy using a custom neutral surface.
func (r RenderContext) WithSurface(surface theme.Surface) RenderContext {
	r.Surface = surface
	return r
}

// Dark reports the mode the tokens were resolved for.
func (r RenderContext) Dark() bool {
	return r.Tokens.Dark
}

// NewStyle starts a style on the context's renderer.
func (r RenderContext) NewStyle() lipgloss.Style {
	if r.Renderer != nil {
		return r.Renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Color maps a token to a terminal colour, blending translucency over the
// page backdrop.
func (r RenderContext) Color(tok theme.Token) lipgloss.Color {
	return tok.Color(r.Surface.Backdrop().Hex())
}

// ContextualRenderable is a component that can receive render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws a child with the context when it supports one.
func Render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
