package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// View renders the chrome around the active variant.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) chromeContext() components.RenderContext {
	return components.NewContext(m.Active().Accent, m.state.DarkMode).
		WithRenderer(m.renderer).
		WithWidth(m.width)
}

// renderHeader renders the brand row, navigation and accent rule.
func (m Model) renderHeader() string {
	ctx := m.chromeContext()
	st := newChromeStyles(ctx)

	brand := lipgloss.JoinHorizontal(lipgloss.Center,
		st.chip.Render("◆"),
		" ",
		st.brand.Render("Pricing Kit"),
		"  ",
		st.tagline.Render(fmt.Sprintf("%d Modern Designs", m.registry.Len())),
	)

	mode := "☀ Light"
	if m.state.DarkMode {
		mode = "☾ Dark"
	}
	right := st.mode.Render(mode)
	if m.Compact() {
		right = lipgloss.JoinHorizontal(lipgloss.Center, st.menuButton.Render("☰ Menu"), " ", right)
	}

	rows := []string{spread(brand, right, m.width)}
	if !m.Compact() {
		rows = append(rows, m.renderTabs(ctx, st))
	}
	if m.state.MobileMenuExpanded {
		rows = append(rows, m.renderMenu(st))
	}
	rows = append(rows, components.AccentDivider().WithWidth(m.width).ViewWithContext(ctx))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTabs(ctx components.RenderContext, st chromeStyles) string {
	tabs := make([]string, 0, m.registry.Len())
	for i, d := range m.registry.All() {
		label := fmt.Sprintf("%d %s", i+1, d.DisplayName)
		if d.ID == m.state.ActiveVariantID {
			tabs = append(tabs, activeTab(ctx, d.Accent).Render(label))
			continue
		}
		tabs = append(tabs, st.tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderMenu(st chromeStyles) string {
	items := make([]string, 0, m.registry.Len())
	for i, d := range m.registry.All() {
		label := fmt.Sprintf("%d  %s", i+1, d.DisplayName)
		if d.ID == m.state.ActiveVariantID {
			items = append(items, st.menuActive.Render("› "+label))
			continue
		}
		items = append(items, st.menuItem.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderFooter renders the status indicator and key help.
func (m Model) renderFooter() string {
	ctx := m.chromeContext()
	st := newChromeStyles(ctx)

	status := st.statusName.Render(m.Active().DisplayName+" Style") +
		st.status.Render(" · "+m.modeLabel())

	h := m.help
	h.Styles = helpStyles(ctx)
	keys := bindingSet{shell: m.keys, view: m.active.Bindings()}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.NewDivider().WithWidth(m.width).ViewWithContext(ctx),
		status,
		h.View(keys),
	)
}

func (m Model) modeLabel() string {
	if m.state.DarkMode {
		return "Dark Mode"
	}
	return "Light Mode"
}

// spread places left and right on one line of the given width, stacking
// them when they do not fit.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}
