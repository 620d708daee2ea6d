package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a new vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with the given context. Horizontal
// stacks split the width evenly between children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, len(s.children))
	for _, child := range s.children {
		if child != nil {
			children = append(children, child)
		}
	}
	if len(children) == 0 {
		return ""
	}

	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Width > 0 {
		childCtx = ctx.WithWidth((ctx.Width - s.gap*(len(children)-1)) / len(children))
	}

	views := make([]string, 0, len(children)*2)
	for i, child := range children {
		if i > 0 && s.gap > 0 {
			views = append(views, s.spacer())
		}
		views = append(views, Render(child, childCtx))
	}

	// Left and Top share a position, as do Right and Bottom.
	pos := s.align.ToLipglossPosition()
	if s.direction == DirectionHorizontal {
		return s.ComputeStyle(ctx).Render(lipgloss.JoinHorizontal(pos, views...))
	}

	out := lipgloss.JoinVertical(pos, views...)
	style := s.ComputeStyle(ctx)
	if s.align != AlignStart && ctx.Width > 0 {
		style = style.Width(ctx.Width).Align(s.align.ToLipglossPosition())
	}
	return style.Render(out)
}

func (s *Stack) spacer() string {
	if s.direction == DirectionHorizontal {
		return strings.Repeat(" ", s.gap)
	}
	return strings.Repeat("\n", s.gap-1)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(direction Direction) *Stack {
	s.direction = direction
	return s
}

// WithGap sets the spacing between children, in columns or lines.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets cross-axis alignment: left to right for vertical stacks,
// top to bottom for horizontal ones.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies token-based style modifiers to the stack.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Len returns the number of children.
func (s *Stack) Len() int {
	return len(s.children)
}
