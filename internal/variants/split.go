package variants

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	"github.com/devlance074/pricing-ui-kit/internal/ui"
	"github.com/devlance074/pricing-ui-kit/internal/ui/components"
)

// NoFAQ marks a collapsed FAQ list.
const NoFAQ = -1

// splitWideWidth is where the hero and plans sit side by side.
const splitWideWidth = 96

type splitKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
}

var splitKeys = splitKeyMap{
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next question"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "prev question"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "expand/collapse"),
	),
}

// ToggleFAQMsg asks a split view to toggle a FAQ entry directly.
type ToggleFAQMsg struct {
	Index int
}

// Split puts the pitch beside the plans and ends with an accordion FAQ in
// which at most one answer is open.
type Split struct {
	frame
	expanded int
	focus    int
}

// NewSplit mounts the split presentation with every answer collapsed.
func NewSplit(page catalog.Page, accent theme.AccentID, m Mount) *Split {
	return &Split{frame: newFrame(page, accent, m), expanded: NoFAQ}
}

// ToggleFAQ opens entry i and closes any other. Toggling the open entry
// closes it. Out of range indexes are ignored.
func (s *Split) ToggleFAQ(i int) {
	if i < 0 || i >= len(s.page.FAQs) {
		return
	}
	s.focus = i
	if s.expanded == i {
		s.expanded = NoFAQ
		return
	}
	s.expanded = i
}

// Expanded returns the open entry or NoFAQ.
func (s *Split) Expanded() int {
	return s.expanded
}

// Focus returns the entry the toggle key acts on.
func (s *Split) Focus() int {
	return s.focus
}

// MoveFocus moves the FAQ cursor by delta, wrapping.
func (s *Split) MoveFocus(delta int) {
	n := len(s.page.FAQs)
	if n == 0 {
		return
	}
	s.focus = ((s.focus+delta)%n + n) % n
}

// Update handles FAQ navigation.
func (s *Split) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ToggleFAQMsg:
		s.ToggleFAQ(msg.Index)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, splitKeys.Next):
			s.MoveFocus(1)
		case key.Matches(msg, splitKeys.Prev):
			s.MoveFocus(-1)
		case key.Matches(msg, splitKeys.Toggle):
			s.ToggleFAQ(s.focus)
		}
	}
	return nil
}

// Bindings lists the FAQ keys.
func (s *Split) Bindings() []key.Binding {
	return []key.Binding{splitKeys.Next, splitKeys.Prev, splitKeys.Toggle}
}

// Render draws the page.
func (s *Split) Render(p Props) string {
	ctx := s.context(p.DarkMode)

	var top string
	if ctx.Width >= splitWideWidth {
		leftWidth := (ctx.Width - columnGap) * 2 / 5
		rightWidth := ctx.Width - columnGap - leftWidth
		top = lipgloss.JoinHorizontal(lipgloss.Top,
			s.renderPitch(ctx.WithWidth(leftWidth)),
			"  ",
			s.renderPlans(ctx.WithWidth(rightWidth)),
		)
	} else {
		top = section(s.renderPitch(ctx), s.renderPlans(ctx))
	}

	return section(
		top,
		s.renderFAQ(prose(ctx)),
		s.renderClosing(ctx),
	)
}

func (s *Split) renderPitch(ctx components.RenderContext) string {
	highlights := make([]string, 0, len(s.page.Highlights))
	for _, h := range s.page.Highlights {
		icon := components.SoftBadge(h.Icon).ViewWithContext(ctx)
		text := lipgloss.JoinVertical(lipgloss.Left,
			components.Heading(h.Title).ViewWithContext(ctx),
			components.Muted(h.Description).ViewWithContext(ctx.WithWidth(ctx.Width-lipgloss.Width(icon)-1)),
		)
		highlights = append(highlights, lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", text))
	}

	rating := ""
	if s.page.Rating != "" {
		stars := ctx.NewStyle().Foreground(ctx.Color(theme.T(theme.FamilyAmber, theme.Shade400))).Render("★★★★★")
		rating = stars + " " + components.Muted(s.page.Rating).ViewWithContext(ctx)
	}

	return section(
		ctx.NewStyle().Width(ctx.Width).Bold(true).
			Foreground(ctx.RoleColor(components.RoleText)).
			Render(s.page.Headline),
		components.Body(s.page.Subheadline).ViewWithContext(ctx),
		section(highlights...),
		rating,
	)
}

func (s *Split) renderPlans(ctx components.RenderContext) string {
	amber := theme.T(theme.FamilyAmber, theme.Shade400)
	blocks := make([]string, 0, len(s.page.Plans)+1)
	for _, plan := range s.page.Plans {
		dot := theme.T(theme.FamilyGray, theme.Shade400)
		if len(plan.Swatch) > 0 {
			if tok, err := theme.ParseToken(plan.Swatch[0]); err == nil {
				dot = tok
			}
		}
		card := planCard{
			plan:   plan,
			label:  s.page.PopularLabel,
			width:  ctx.Width,
			header: components.NewText("●").WithAppliers(components.ForegroundToken(dot)),
			ring:   &amber,
			badge: func(label string) *components.Badge {
				return components.NewBadge(label).WithAppliers(
					components.BackgroundToken(amber),
					components.ForegroundToken(theme.T(theme.FamilyGray, theme.Shade900)),
				)
			},
		}
		blocks = append(blocks, card.build().ViewWithContext(ctx))
	}
	for _, note := range s.page.Footnotes {
		blocks = append(blocks, center(ctx, components.Muted(note).ViewWithContext(ctx)))
	}
	return section(blocks...)
}

func (s *Split) renderFAQ(ctx components.RenderContext) string {
	if len(s.page.FAQs) == 0 {
		return ""
	}

	rows := make([]ui.Renderable, 0, len(s.page.FAQs)*2+1)
	rows = append(rows, components.Heading("Frequently asked questions"))
	for i, faq := range s.page.FAQs {
		marker := "▸"
		if i == s.expanded {
			marker = "▾"
		}
		question := components.NewText(fmt.Sprintf("%s %s", marker, faq.Question))
		if i == s.focus {
			question.WithAppliers(components.Foreground(components.RoleAccent), components.Bold())
		} else {
			question.WithAppliers(components.Foreground(components.RoleText))
		}
		rows = append(rows, question)
		if i == s.expanded {
			rows = append(rows, components.Body(faq.Answer).WithAppliers(components.Padding(components.Spacing{Left: 2})))
		}
	}

	return center(ctx, components.NewCard(rows...).WithWidth(ctx.Width).ViewWithContext(ctx))
}

func (s *Split) renderClosing(ctx components.RenderContext) string {
	cta := s.page.CallToAction
	if cta == nil {
		return ""
	}
	buttons := make([]string, 0, len(cta.Actions))
	for _, action := range cta.Actions {
		buttons = append(buttons, components.NewButton(action).ViewWithContext(ctx))
	}
	return center(ctx, lipgloss.JoinVertical(lipgloss.Center,
		components.Heading(cta.Title).ViewWithContext(ctx),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	))
}
