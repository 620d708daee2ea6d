// Package variants holds the interchangeable pricing-page presentations and
// the registry that selects between them.
package variants

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// Gallery variant identifiers.
const (
	IDClassic  = "classic"
	IDGlass    = "glass"
	IDCentered = "centered"
	IDSplit    = "split"
	IDTech     = "dark"
)

// DefaultWidth is used until the host reports a terminal size.
const DefaultWidth = 100

// Props is the only configuration a view receives from its host.
type Props struct {
	DarkMode bool
}

// Mount describes the rendering environment a view is created in.
type Mount struct {
	Renderer *lipgloss.Renderer
	Width    int
}

// View is a mounted pricing presentation. Local state lives on the instance
// and is lost when the host discards it.
type View interface {
	// Render draws the view for the given props. It is deterministic for a
	// given props value and local state.
	Render(Props) string
	// Update handles the view's own interaction messages.
	Update(tea.Msg) tea.Cmd
	// Bindings lists the keys the view responds to, for help output.
	Bindings() []key.Binding
	// SetWidth resizes the view.
	SetWidth(int)
}

// Factory mounts a fresh view instance.
type Factory func(Mount) View

// frame carries the state every view shares: the catalog page, the accent
// and the rendering environment.
type frame struct {
	page     catalog.Page
	accent   theme.AccentID
	renderer *lipgloss.Renderer
	width    int
}

func newFrame(page catalog.Page, accent theme.AccentID, m Mount) frame {
	f := frame{page: page, accent: accent, renderer: m.Renderer}
	f.SetWidth(m.Width)
	return f
}

// SetWidth resizes the view, falling back to DefaultWidth.
func (f *frame) SetWidth(width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	f.width = width
}

// Bindings is the default for views without interaction.
func (f *frame) Bindings() []key.Binding {
	return nil
}

// context resolves this view's own tokens for the requested mode.
func (f *frame) context(dark bool) components.RenderContext {
	return components.NewContext(f.accent, dark).
		WithRenderer(f.renderer).
		WithWidth(f.width)
}

// Page exposes the catalog content the view renders.
func (f *frame) Page() catalog.Page {
	return f.page
}
