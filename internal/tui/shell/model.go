package shell

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/logger"
	"github.com/devlance074/pricing-ui-kit/internal/variants"
)

const (
	defaultWidth  = variants.DefaultWidth
	defaultHeight = 30

	// compactWidth is where the tab row collapses into the menu button.
	compactWidth = 80
	minViewport  = 3
)

// AppearanceState is the shell's session state. It changes only through
// the Model methods.
type AppearanceState struct {
	ActiveVariantID    string
	DarkMode           bool
	MobileMenuExpanded bool
}

// Options seeds a new shell.
type Options struct {
	Variant  string
	DarkMode bool
	Renderer *lipgloss.Renderer
	Logger   *logger.Logger
}

// Model hosts exactly one mounted variant view and the chrome around it.
type Model struct {
	registry *variants.Registry
	state    AppearanceState
	active   variants.View

	renderer *lipgloss.Renderer
	log      *logger.Logger

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	showHelp bool

	width  int
	height int
}

// NewModel creates a shell over the registry. An unknown initial variant
// falls back to the registry default.
func NewModel(reg *variants.Registry, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	vp := viewport.New(defaultWidth, defaultHeight)
	vp.KeyMap = scrollKeys()

	m := Model{
		registry: reg,
		state:    AppearanceState{DarkMode: opts.DarkMode},
		renderer: opts.Renderer,
		log:      log,
		keys:     newKeyMap(reg.Len()),
		help:     help.New(),
		viewport: vp,
		width:    defaultWidth,
		height:   defaultHeight,
	}

	initial := opts.Variant
	if initial == "" {
		initial = reg.Default().ID
	}
	m.SelectVariant(initial)
	return m
}

// Init performs no I/O; the shell is driven entirely by input.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectVariant activates id. Selecting the active id keeps its view and
// local state. Unknown ids fall back to the registry default. The mobile
// menu always closes.
func (m *Model) SelectVariant(id string) {
	m.state.MobileMenuExpanded = false

	desc, err := m.registry.Resolve(id)
	if err != nil {
		m.log.WithFields(map[string]any{
			"requested": id,
			"fallback":  desc.ID,
		}).Warn(err.Error())
	}

	if desc.ID != m.state.ActiveVariantID || m.active == nil {
		m.state.ActiveVariantID = desc.ID
		m.active = desc.New(m.mount())
		m.viewport.GotoTop()
		m.log.WithFields(map[string]any{"variant": desc.ID}).Debug("variant mounted")
	}

	m.layout()
}

// ToggleDarkMode flips the colour scheme. The active view keeps its state.
func (m *Model) ToggleDarkMode() {
	m.state.DarkMode = !m.state.DarkMode
	m.log.WithFields(map[string]any{"dark_mode": m.state.DarkMode}).Debug("appearance changed")
	m.layout()
}

// ToggleMobileMenu opens or closes the compact variant menu.
func (m *Model) ToggleMobileMenu() {
	m.state.MobileMenuExpanded = !m.state.MobileMenuExpanded
	m.layout()
}

// ToggleHelp shows or hides the keyboard reference.
func (m *Model) ToggleHelp() {
	m.showHelp = !m.showHelp
	m.viewport.GotoTop()
	m.layout()
}

// Resize adapts the chrome, viewport and active view to a terminal size.
func (m *Model) Resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.active.SetWidth(m.width)
	m.help.Width = m.width
	m.layout()
}

// State returns a copy of the appearance state.
func (m Model) State() AppearanceState {
	return m.state
}

// ActiveView returns the mounted view instance.
func (m Model) ActiveView() variants.View {
	return m.active
}

// Active returns the descriptor of the mounted view.
func (m Model) Active() variants.Descriptor {
	d, _ := m.registry.Resolve(m.state.ActiveVariantID)
	return d
}

// ShowingHelp reports whether the keyboard reference is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// Compact reports whether the tab row is collapsed into the menu button.
func (m Model) Compact() bool {
	return m.width < compactWidth
}

func (m Model) props() variants.Props {
	return variants.Props{DarkMode: m.state.DarkMode}
}

func (m Model) mount() variants.Mount {
	return variants.Mount{Renderer: m.renderer, Width: m.width}
}

// layout sizes the viewport to the space the chrome leaves and refreshes
// its content.
func (m *Model) layout() {
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, minViewport)

	if m.showHelp {
		m.viewport.SetContent(m.renderHelp())
		return
	}
	m.viewport.SetContent(m.active.Render(m.props()))
}
