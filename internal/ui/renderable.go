// Package ui holds the small interfaces shared by the component kit and the
// variant views.
package ui

// Renderable is anything that can draw itself as terminal text.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	return f()
}
