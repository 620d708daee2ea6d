package theme

// TokenSet is the derived accent styling a variant consumes. It is recomputed
// for each (accent, mode) pair and never mutated.
type TokenSet struct {
	Accent           AccentID
	Dark             bool
	Background       Token
	HoverBackground  Token
	ForegroundAccent Token
	LightBackground  Token
	RingColor        Token
	ShadowColor      Token
}

// Fields returns every token keyed by role.
func (ts TokenSet) Fields() map[string]Token {
	return map[string]Token{
		"background":        ts.Background,
		"hover_background":  ts.HoverBackground,
		"foreground_accent": ts.ForegroundAccent,
		"light_background":  ts.LightBackground,
		"ring_color":        ts.RingColor,
		"shadow_color":      ts.ShadowColor,
	}
}

// Resolve derives the token set for an accent and mode. It is pure and total:
// an accent outside the closed set is unreachable after init validation, and
// degrades to the indigo recipe rather than failing.
func Resolve(accent AccentID, dark bool) TokenSet {
	family, ok := accentFamilies[accent]
	if !ok {
		accent, family = AccentIndigo, FamilyIndigo
	}

	ts := TokenSet{
		Accent:          accent,
		Dark:            dark,
		Background:      T(family, Shade500),
		HoverBackground: T(family, Shade600),
	}
	if dark {
		ts.ForegroundAccent = T(family, Shade400)
		ts.LightBackground = T(family, Shade900).Alpha(50)
		ts.RingColor = T(family, Shade400)
		ts.ShadowColor = T(family, Shade500).Alpha(10)
		return ts
	}
	ts.ForegroundAccent = T(family, Shade600)
	ts.LightBackground = T(family, Shade50)
	ts.RingColor = T(family, Shade500)
	ts.ShadowColor = T(family, Shade500).Alpha(25)
	return ts
}

// Surface holds the neutral chrome tokens for a mode.
type Surface struct {
	Dark          bool
	Page          Token
	Card          Token
	Border        Token
	TextPrimary   Token
	TextSecondary Token
	TextMuted     Token
}

// ResolveSurface returns the neutral tokens shared by the shell and the
// gray-surfaced variants.
func ResolveSurface(dark bool) Surface {
	if dark {
		return Surface{
			Dark:          true,
			Page:          T(FamilyGray, Shade900),
			Card:          T(FamilyGray, Shade800),
			Border:        T(FamilyGray, Shade700),
			TextPrimary:   T(FamilyWhite, Shade500),
			TextSecondary: T(FamilyGray, Shade300),
			TextMuted:     T(FamilyGray, Shade400),
		}
	}
	return Surface{
		Page:          T(FamilyGray, Shade50),
		Card:          T(FamilyWhite, Shade500),
		Border:        T(FamilyGray, Shade200),
		TextPrimary:   T(FamilyGray, Shade900),
		TextSecondary: T(FamilyGray, Shade600),
		TextMuted:     T(FamilyGray, Shade500),
	}
}

// Backdrop is the colour translucent tokens blend against for this surface.
func (s Surface) Backdrop() Token {
	return s.Page
}
