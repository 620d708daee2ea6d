package shell

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case SelectVariantMsg:
		m.SelectVariant(msg.ID)
		return m, nil

	case ToggleDarkModeMsg:
		m.ToggleDarkMode()
		return m, nil

	case ToggleMenuMsg:
		m.ToggleMobileMenu()
		return m, nil

	case ToggleHelpMsg:
		m.ToggleHelp()
		return m, nil
	}

	// Anything else belongs to the active view.
	cmd := m.active.Update(msg)
	m.layout()
	return m, cmd
}

// handleKeyPress routes shell keys first, then scroll keys, then hands the
// rest to the active view.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.ToggleHelp()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if m.showHelp {
			m.ToggleHelp()
		} else if m.state.MobileMenuExpanded {
			m.ToggleMobileMenu()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.SelectVariant(m.registry.At(m.registry.IndexOf(m.state.ActiveVariantID) + 1).ID)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.SelectVariant(m.registry.At(m.registry.IndexOf(m.state.ActiveVariantID) - 1).ID)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.SelectVariant(m.registry.At(int(msg.String()[0] - '1')).ID)
		return m, nil

	case key.Matches(msg, m.keys.Dark):
		m.ToggleDarkMode()
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.ToggleMobileMenu()
		return m, nil

	case isScrollKey(msg, m.viewport.KeyMap):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		return m, nil
	}

	cmd := m.active.Update(msg)
	m.layout()
	return m, cmd
}

func isScrollKey(msg tea.KeyMsg, km viewport.KeyMap) bool {
	return key.Matches(msg, km.Up, km.Down, km.PageUp, km.PageDown, km.HalfPageUp, km.HalfPageDown)
}
