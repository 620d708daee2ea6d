package shell

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Dark   key.Binding
	Menu   key.Binding
	Help   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

// newKeyMap binds one digit per design, up to nine.
func newKeyMap(designs int) keyMap {
	designs = min(max(designs, 1), 9)
	digits := make([]string, 0, designs)
	for i := 1; i <= designs; i++ {
		digits = append(digits, strconv.Itoa(i))
	}
	choose := digits[0]
	if designs > 1 {
		choose += "-" + digits[designs-1]
	}

	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next design"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous design"),
		),
		Select: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp(choose, "choose design"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scrollKeys keeps the viewport off letter keys so views can use them.
func scrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
	}
}

// bindingSet adapts the shell keys plus the active view's keys to
// help.KeyMap.
type bindingSet struct {
	shell keyMap
	view  []key.Binding
}

func (b bindingSet) ShortHelp() []key.Binding {
	out := []key.Binding{b.shell.Next, b.shell.Select, b.shell.Dark}
	out = append(out, b.view...)
	return append(out, b.shell.Help, b.shell.Quit)
}

func (b bindingSet) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.shell.Next, b.shell.Prev, b.shell.Select, b.shell.Menu},
		{b.shell.Dark, b.shell.Help, b.shell.Close, b.shell.Quit},
		b.view,
	}
}
