package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Token is a symbolic style identifier such as "indigo-500" or "rose-500/25".
// The rendering layer maps it to a concrete colour with Color.
type Token struct {
	Family Family
	Shade  Shade
	// Opacity is a percentage in (0, 100]. Zero means fully opaque.
	Opacity int
}

// T builds an opaque token.
func T(family Family, shade Shade) Token {
	return Token{Family: family, Shade: shade}
}

// Alpha returns a copy of the token at the given opacity percentage.
func (t Token) Alpha(percent int) Token {
	t.Opacity = percent
	return t
}

// IsZero reports whether the token was never set.
func (t Token) IsZero() bool {
	return t.Family == ""
}

// Translucent reports whether the token needs blending against a backdrop.
func (t Token) Translucent() bool {
	return t.Opacity > 0 && t.Opacity < 100
}

func (t Token) String() string {
	if t.IsZero() {
		return ""
	}
	var name string
	switch t.Family {
	case FamilyWhite, FamilyBlack:
		name = string(t.Family)
	default:
		name = fmt.Sprintf("%s-%d", t.Family, t.Shade.Number())
	}
	if t.Translucent() {
		name = fmt.Sprintf("%s/%d", name, t.Opacity)
	}
	return name
}

// Hex returns the token's opaque palette colour, ignoring opacity.
func (t Token) Hex() lipgloss.Color {
	c, _ := DefaultPalette.Color(t.Family, t.Shade)
	return c
}

// Color maps the token to a terminal colour. Translucent tokens are
// alpha-blended over the backdrop colour.
func (t Token) Color(backdrop lipgloss.Color) lipgloss.Color {
	hex := t.Hex()
	if !t.Translucent() || backdrop == "" || hex == "" {
		return hex
	}
	fg, err := colorful.Hex(string(hex))
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(string(backdrop))
	if err != nil {
		return hex
	}
	blended := bg.BlendRgb(fg, float64(t.Opacity)/100).Clamped()
	return lipgloss.Color(blended.Hex())
}

// ParseToken reads the utility notation produced by String, for example
// "purple-600", "rose-500/25" or "white".
func ParseToken(s string) (Token, error) {
	name, alpha, hasAlpha := strings.Cut(strings.TrimSpace(s), "/")

	var tok Token
	if hasAlpha {
		opacity, err := strconv.Atoi(alpha)
		if err != nil || opacity <= 0 || opacity > 100 {
			return Token{}, fmt.Errorf("token %q: invalid opacity %q", s, alpha)
		}
		tok.Opacity = opacity
	}

	switch Family(name) {
	case FamilyWhite, FamilyBlack:
		tok.Family, tok.Shade = Family(name), Shade500
		return tok, nil
	}

	idx := strings.LastIndex(name, "-")
	if idx <= 0 {
		return Token{}, fmt.Errorf("token %q: expected family-shade", s)
	}
	family := Family(name[:idx])
	if _, ok := DefaultPalette[family]; !ok {
		return Token{}, fmt.Errorf("token %q: unknown family %q", s, family)
	}
	number, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return Token{}, fmt.Errorf("token %q: invalid shade: %w", s, err)
	}
	for shade, n := range shadeNumbers {
		if n == number {
			tok.Family, tok.Shade = family, Shade(shade)
			return tok, nil
		}
	}
	return Token{}, fmt.Errorf("token %q: unsupported shade %d", s, number)
}
