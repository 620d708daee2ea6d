package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/devlance074/pricing-ui-kit/internal/theme"
)

// Role is a semantic colour slot resolved from a RenderContext.
type Role int

const (
	RoleAccent Role = iota
	RoleAccentFill
	RoleAccentHover
	RoleAccentSoft
	RoleRing
	RoleShadow
	RoleText
	RoleTextSecondary
	RoleTextMuted
	RoleBorder
	RoleCard
	RolePage
	RoleOnAccent
)

// Token returns the token bound to a role.
func (r RenderContext) Token(role Role) theme.Token {
	switch role {
	case RoleAccent:
		return r.Tokens.ForegroundAccent
	case RoleAccentFill:
		return r.Tokens.Background
	case RoleAccentHover:
		return r.Tokens.HoverBackground
	case RoleAccentSoft:
		return r.Tokens.LightBackground
	case RoleRing:
		return r.Tokens.RingColor
	case RoleShadow:
		return r.Tokens.ShadowColor
	case RoleText:
		return r.Surface.TextPrimary
	case RoleTextSecondary:
		return r.Surface.TextSecondary
	case RoleTextMuted:
		return r.Surface.TextMuted
	case RoleBorder:
		return r.Surface.Border
	case RoleCard:
		return r.Surface.Card
	case RolePage:
		return r.Surface.Page
	case RoleOnAccent:
		return theme.T(theme.FamilyWhite, theme.Shade500)
	default:
		return r.Surface.TextPrimary
	}
}

// RoleColor resolves a role straight to a terminal colour.
func (r RenderContext) RoleColor(role Role) lipgloss.Color {
	return r.Color(r.Token(role))
}

// Foreground sets the text colour from a role.
func Foreground(role Role) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.Foreground(ctx.RoleColor(role))
	}
}

// Background sets the background colour from a role.
func Background(role Role) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.Background(ctx.RoleColor(role))
	}
}

// BorderColor sets the border colour from a role.
func BorderColor(role Role) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.BorderForeground(ctx.RoleColor(role))
	}
}

// ForegroundToken sets the text colour from an explicit token.
func ForegroundToken(tok theme.Token) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.Foreground(ctx.Color(tok))
	}
}

// BackgroundToken sets the background colour from an explicit token.
func BackgroundToken(tok theme.Token) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.Background(ctx.Color(tok))
	}
}

// BorderToken sets the border colour from an explicit token.
func BorderToken(tok theme.Token) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.BorderForeground(ctx.Color(tok))
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Bold(true)
	}
}

// Italic makes text italic.
func Italic() StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Italic(true)
	}
}

// Strikethrough crosses text out.
func Strikethrough() StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Strikethrough(true)
	}
}

// Padding applies padding on every side.
func Padding(sp Spacing) StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Padding(sp.Top, sp.Right, sp.Bottom, sp.Left)
	}
}

// Margin applies margin on every side.
func Margin(sp Spacing) StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Margin(sp.Top, sp.Right, sp.Bottom, sp.Left)
	}
}

// Align sets horizontal alignment.
func Align(a Alignment) StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Align(a.ToLipglossPosition())
	}
}
