package components

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	wrap    bool
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx)
	if t.wrap && ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithAppliers applies token-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Wrapped makes the text word-wrap at the context width.
func (t *Text) Wrapped() *Text {
	t.wrap = true
	return t
}

// Heading creates bold primary text.
func Heading(content string) *Text {
	return NewText(content).WithAppliers(Foreground(RoleText), Bold())
}

// Body creates secondary text that wraps to the available width.
func Body(content string) *Text {
	return NewText(content).WithAppliers(Foreground(RoleTextSecondary)).Wrapped()
}

// Muted creates low-emphasis text.
func Muted(content string) *Text {
	return NewText(content).WithAppliers(Foreground(RoleTextMuted))
}

// Accent creates text in the accent foreground.
func Accent(content string) *Text {
	return NewText(content).WithAppliers(Foreground(RoleAccent), Bold())
}
