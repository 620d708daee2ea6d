package components

import "github.com/charmbracelet/lipgloss"

// Toggle is a two-position switch with a label on each side.
type Toggle struct {
	BaseComponent
	off string
	on  string
	set bool
}

// NewToggle creates a switch between two labels.
func NewToggle(off, on string) *Toggle {
	return &Toggle{
		BaseComponent: NewBaseComponent(),
		off:           off,
		on:            on,
	}
}

// View renders the toggle.
func (t *Toggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toggle, emphasising the selected side.
func (t *Toggle) ViewWithContext(ctx RenderContext) string {
	selected := ctx.NewStyle().Bold(true).Foreground(ctx.RoleColor(RoleText))
	idle := ctx.NewStyle().Foreground(ctx.RoleColor(RoleTextMuted))

	knob := "●───"
	track := ctx.NewStyle().Foreground(ctx.RoleColor(RoleBorder))
	offStyle, onStyle := selected, idle
	if t.set {
		knob = "───●"
		track = ctx.NewStyle().Foreground(ctx.RoleColor(RoleAccentFill))
		offStyle, onStyle = idle, selected
	}

	return t.ComputeStyle(ctx).Render(lipgloss.JoinHorizontal(lipgloss.Center,
		offStyle.Render(t.off),
		"  ",
		track.Render("("+knob+")"),
		"  ",
		onStyle.Render(t.on),
	))
}

// WithOn sets the switch position.
func (t *Toggle) WithOn(on bool) *Toggle {
	t.set = on
	return t
}

// On reports the switch position.
func (t *Toggle) On() bool {
	return t.set
}
