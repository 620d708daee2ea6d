package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui"
)

func TestStyleModifiers(t *testing.T) {
	ctx := NewContext(theme.AccentEmerald, false)

	style := NewCompositeStrategy(
		Background(RoleAccentFill),
		Foreground(RoleOnAccent),
		Padding(UniformSpacing(1)),
		Bold(),
	).Apply(lipgloss.NewStyle(), ctx)

	assert.Equal(t, lipgloss.Color("#10b981"), style.GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), style.GetForeground())
	assert.Equal(t, 1, style.GetPaddingLeft())
	assert.True(t, style.GetBold())
}

func TestRolesFollowMode(t *testing.T) {
	light := NewContext(theme.AccentRose, false)
	dark := NewContext(theme.AccentRose, true)

	assert.Equal(t, "rose-600", light.Token(RoleAccent).String())
	assert.Equal(t, "rose-400", dark.Token(RoleAccent).String())
	assert.Equal(t, "gray-900", light.Token(RoleText).String())
	assert.Equal(t, "white", dark.Token(RoleText).String())
	assert.True(t, dark.Dark())
	assert.NotEqual(t, light.RoleColor(RoleShadow), dark.RoleColor(RoleShadow))
}

func TestAddAppliersWrapsCustomStrategy(t *testing.T) {
	text := NewText("hello")
	text.SetStrategy(customStrategy{})
	text.AddAppliers(Bold())

	style := text.ComputeStyle(DefaultContext())
	assert.True(t, style.GetItalic(), "custom strategy should still run")
	assert.True(t, style.GetBold(), "appended applier should run")
}

type customStrategy struct{}

func (customStrategy) Apply(base lipgloss.Style, _ RenderContext) lipgloss.Style {
	return base.Italic(true)
}

func TestCardRendersChildrenAndBadge(t *testing.T) {
	card := NewCard(
		Heading("Pro"),
		NewPriceTag("$29", "/month"),
	).WithHighlight(true).WithBadge(NewBadge("Most Popular")).WithWidth(30)

	out := card.ViewWithContext(DefaultContext())

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Most Popular", "badge sits above the frame")
	assert.Contains(t, out, "Pro")
	assert.Contains(t, out, "$29/month")
	assert.Contains(t, out, "┏", "highlighted cards use a thick border")
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.True(t, card.Highlighted())
}

func TestCardPlainBorder(t *testing.T) {
	out := NewCard(NewText("Basic")).View()
	assert.Contains(t, out, "╭")
	assert.NotContains(t, out, "┏")
}

func TestPriceTagShowsOriginal(t *testing.T) {
	plain := NewPriceTag("$12", "/month").View()
	assert.Contains(t, plain, "$12/month")
	assert.NotContains(t, plain, "was")

	discounted := NewPriceTag("$9", "/month").WithOriginal("$12").View()
	assert.Contains(t, discounted, "$9/month")
	assert.Contains(t, discounted, "was $12/month")
}

func TestToggleRendersBothLabels(t *testing.T) {
	toggle := NewToggle("Monthly", "Yearly")
	assert.False(t, toggle.On())
	off := toggle.View()
	on := toggle.WithOn(true).View()

	for _, out := range []string{off, on} {
		assert.Contains(t, out, "Monthly")
		assert.Contains(t, out, "Yearly")
	}
	assert.Contains(t, off, "(●───)")
	assert.Contains(t, on, "(───●)")
}

func TestChecklist(t *testing.T) {
	out := NewChecklist("API access", "SSO").View()
	assert.Contains(t, out, "✓ API access")
	assert.Equal(t, 2, strings.Count(out, "✓"))

	inline := NewChecklist("a", "b").WithMarker("•").Inline().View()
	assert.Equal(t, 1, lipgloss.Height(inline))
}

func TestStackLayouts(t *testing.T) {
	vertical := VStack(NewText("one"), nil, NewText("two")).WithGap(1).View()
	lines := strings.Split(vertical, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "one", lines[0])
	assert.Empty(t, strings.TrimSpace(lines[1]))
	assert.Equal(t, "two", lines[2])

	horizontal := HStack(NewText("a"), NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", horizontal)

	bottom := HStack(NewText("x"), ui.RenderableFunc(func() string { return "y1\ny2" })).
		WithGap(1).
		WithAlign(AlignEnd).
		View()
	assert.Equal(t, []string{"  y1", "x y2"}, strings.Split(bottom, "\n"))

	assert.Empty(t, VStack().View())
	assert.Equal(t, 2, HStack(NewText("x"), NewText("y")).Len())
}

func TestRenderFallsBackToView(t *testing.T) {
	plain := ui.RenderableFunc(func() string { return "plain" })
	assert.Equal(t, "plain", Render(plain, DefaultContext()))
	assert.Empty(t, Render(nil, DefaultContext()))
}

func TestDividerLabel(t *testing.T) {
	out := NewDivider().WithWidth(20).WithLabel("or").View()
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, out, " or ")

	assert.Equal(t, 40, lipgloss.Width(AccentDivider().View()))
}

func TestButtonVariants(t *testing.T) {
	ctx := DefaultContext().WithWidth(24)

	primary := NewButton("Get Started").Full().ViewWithContext(ctx)
	assert.Contains(t, primary, "Get Started")
	assert.Equal(t, 24, lipgloss.Width(primary))

	outline := NewButton("Contact Sales").WithVariant(ButtonVariantOutline).Full().ViewWithContext(ctx)
	assert.Equal(t, 24, lipgloss.Width(outline))
	assert.Equal(t, 3, lipgloss.Height(outline))

	assert.Equal(t, "Get Started", NewButton("Get Started").Label())
}
