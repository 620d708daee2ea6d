package variants

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

const (
	minCardWidth = 30
	maxCardWidth = 40
	columnGap    = 2
	proseWidth   = 72
)

// columns returns how many blocks of at least minWidth fit in width.
func columns(width, n, minWidth int) int {
	if n <= 1 {
		return 1
	}
	cols := (width + columnGap) / (minWidth + columnGap)
	if cols < 1 {
		return 1
	}
	if cols > n {
		return n
	}
	return cols
}

// cardWidth splits width evenly across cols, capped at maxCardWidth.
func cardWidth(width, cols int) int {
	w := (width - columnGap*(cols-1)) / cols
	if w > maxCardWidth && cols > 1 {
		w = maxCardWidth
	}
	if w < minCardWidth && width >= minCardWidth {
		w = minCardWidth
	}
	if w > width {
		w = width
	}
	return w
}

// grid lays blocks out in rows of cols. Cards in a row share a bottom edge
// so that a badge above the featured card does not push its body down.
func grid(blocks []string, cols int) string {
	if cols <= 1 {
		return components.VStack(rendered(blocks)...).View()
	}
	rows := make([]ui.Renderable, 0, (len(blocks)+cols-1)/cols)
	for start := 0; start < len(blocks); start += cols {
		end := min(start+cols, len(blocks))
		rows = append(rows, components.HStack(rendered(blocks[start:end])...).
			WithGap(columnGap).
			WithAlign(components.AlignEnd))
	}
	return components.VStack(rows...).View()
}

// center aligns a block in the middle of the context width.
func center(ctx components.RenderContext, block string) string {
	return ctx.NewStyle().Width(ctx.Width).Align(lipgloss.Center).Render(block)
}

// prose narrows the context for readable paragraphs.
func prose(ctx components.RenderContext) components.RenderContext {
	if ctx.Width > proseWidth {
		return ctx.WithWidth(proseWidth)
	}
	return ctx
}

// hero renders the centred headline and subheadline of a page.
func hero(ctx components.RenderContext, page catalog.Page) string {
	narrow := prose(ctx)
	title := components.Heading(page.Headline).ViewWithContext(narrow)
	sub := narrow.NewStyle().
		Width(narrow.Width).
		Align(lipgloss.Center).
		Foreground(narrow.RoleColor(components.RoleTextSecondary)).
		Render(page.Subheadline)
	return center(ctx, lipgloss.JoinVertical(lipgloss.Center, title, "", sub))
}

// section stacks blocks with one blank line between them.
func section(blocks ...string) string {
	return components.VStack(rendered(blocks)...).WithGap(1).View()
}

// renderedBlock wraps pre-rendered text as a child component.
type renderedBlock string

func (r renderedBlock) View() string { return string(r) }

// rendered wraps the non-empty blocks for a stack.
func rendered(blocks []string) []ui.Renderable {
	out := make([]ui.Renderable, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			out = append(out, renderedBlock(b))
		}
	}
	return out
}

// planCard describes how a variant dresses a plan card.
type planCard struct {
	plan    catalog.Plan
	label   string
	width   int
	header  ui.Renderable
	between []ui.Renderable
	button  *components.Button
	ring    *theme.Token
	badge   func(label string) *components.Badge
}

func (pc planCard) build() *components.Card {
	title := pc.plan.Name
	if pc.plan.Icon != "" {
		title = pc.plan.Icon + "  " + title
	}

	price := components.NewPriceTag(pc.plan.Price, pc.plan.Period).
		WithAppliers(components.Foreground(components.RoleText))
	if pc.plan.Discounted() {
		price.WithOriginal(pc.plan.OriginalPrice)
	}

	button := pc.button
	if button == nil {
		button = components.NewButton(pc.plan.CTA).Full()
		if !pc.plan.Popular {
			button.WithVariant(components.ButtonVariantSecondary)
		}
	}

	children := make([]ui.Renderable, 0, 6+len(pc.between))
	if pc.header != nil {
		children = append(children, pc.header)
	}
	children = append(children,
		components.Heading(title),
		components.Body(pc.plan.Description),
		price,
	)
	children = append(children, pc.between...)
	children = append(children,
		components.NewChecklist(pc.plan.Features...).
			WithAppliers(components.Foreground(components.RoleTextSecondary)),
		button,
	)

	card := components.NewCard(children...).
		WithGap(1).
		WithWidth(pc.width).
		WithHighlight(pc.plan.Popular)
	if pc.plan.Popular && pc.ring != nil {
		card.WithAppliers(components.BorderToken(*pc.ring))
	}
	if pc.plan.Popular && pc.label != "" {
		if pc.badge != nil {
			card.WithBadge(pc.badge(pc.label))
		} else {
			card.WithBadge(components.NewBadge(pc.label))
		}
	}
	return card
}

// planGrid renders plan cards in as many columns as fit.
func planGrid(ctx components.RenderContext, cards []planCard) string {
	cols := columns(ctx.Width, len(cards), minCardWidth)
	width := cardWidth(ctx.Width, cols)
	blocks := make([]string, 0, len(cards))
	for _, pc := range cards {
		pc.width = width
		blocks = append(blocks, pc.build().ViewWithContext(ctx))
	}
	return center(ctx, grid(blocks, cols))
}

// logos renders a muted row of names.
func logos(ctx components.RenderContext, names []string) string {
	if len(names) == 0 {
		return ""
	}
	return ctx.NewStyle().
		Width(ctx.Width).
		Align(lipgloss.Center).
		Foreground(ctx.RoleColor(components.RoleTextMuted)).
		Bold(true).
		Render(strings.Join(names, "    "))
}
