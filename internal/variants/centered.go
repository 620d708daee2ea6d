package variants

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

var billingKey = key.NewBinding(
	key.WithKeys("b"),
	key.WithHelp("b", "monthly/yearly"),
)

// Centered is a single column of plans with a monthly/yearly billing switch
// and a static FAQ grid.
type Centered struct {
	frame
	yearly bool
}

// NewCentered mounts the centred presentation on monthly billing.
func NewCentered(page catalog.Page, accent theme.AccentID, m Mount) *Centered {
	return &Centered{frame: newFrame(page, accent, m)}
}

// ToggleBilling switches between the monthly and yearly plan tables.
func (c *Centered) ToggleBilling() {
	if !c.page.HasBillingToggle() {
		return
	}
	c.yearly = !c.yearly
}

// Yearly reports the selected billing period.
func (c *Centered) Yearly() bool {
	return c.yearly
}

// Plans returns the plan table for the selected billing period.
func (c *Centered) Plans() []catalog.Plan {
	if c.yearly {
		return c.page.Yearly
	}
	return c.page.Plans
}

// Update handles the billing switch.
func (c *Centered) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, billingKey) {
		c.ToggleBilling()
	}
	return nil
}

// Bindings lists the billing key.
func (c *Centered) Bindings() []key.Binding {
	return []key.Binding{billingKey}
}

// Render draws the page.
func (c *Centered) Render(p Props) string {
	ctx := c.context(p.DarkMode)
	column := prose(ctx)

	switcher := components.NewToggle("Monthly", "Yearly").WithOn(c.yearly).ViewWithContext(ctx)
	if c.yearly && c.page.SavingsLabel != "" {
		switcher = lipgloss.JoinHorizontal(lipgloss.Center,
			switcher, "  ",
			components.SoftBadge(c.page.SavingsLabel).ViewWithContext(ctx),
		)
	}

	cards := make([]string, 0, len(c.page.Plans))
	for _, plan := range c.Plans() {
		var between []ui.Renderable
		if c.page.SectionLabel != "" {
			between = append(between, components.Heading(c.page.SectionLabel))
		}
		card := planCard{
			plan:    plan,
			label:   c.page.PopularLabel,
			width:   column.Width,
			between: between,
		}
		cards = append(cards, card.build().ViewWithContext(column))
	}

	return section(
		hero(ctx, c.page),
		center(ctx, switcher),
		center(ctx, section(cards...)),
		c.renderFAQ(ctx),
	)
}

func (c *Centered) renderFAQ(ctx components.RenderContext) string {
	if len(c.page.FAQs) == 0 {
		return ""
	}
	cols, width := 1, ctx.Width
	if ctx.Width >= 2*(minCardWidth+6)+columnGap {
		cols, width = 2, (ctx.Width-columnGap)/2
	}
	if width > proseWidth {
		width = proseWidth
	}
	itemCtx := ctx.WithWidth(width)

	blocks := make([]string, 0, len(c.page.FAQs))
	for _, faq := range c.page.FAQs {
		blocks = append(blocks, components.NewCard(
			components.Heading(faq.Question).Wrapped(),
			components.Body(faq.Answer),
		).WithWidth(width).ViewWithContext(itemCtx))
	}
	faqs := grid(blocks, cols)
	rule := components.NewDivider().
		WithLabel("Common questions").
		WithWidth(lipgloss.Width(faqs)).
		ViewWithContext(ctx)
	return center(ctx, lipgloss.JoinVertical(lipgloss.Left, rule, "", faqs))
}
