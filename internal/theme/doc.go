// Package theme resolves symbolic style tokens for the pricing gallery.
//
// # Overview
//
// Variants never hard-code colours. Each one is keyed to an AccentID and asks
// Resolve for a TokenSet for the current mode:
//
//	tokens := theme.Resolve(theme.AccentEmerald, darkMode)
//	surface := theme.ResolveSurface(darkMode)
//	ring := tokens.RingColor.Color(surface.Page.Hex())
//
// Tokens are Tailwind-style identifiers (family, shade, opacity). They map to
// hex colours through DefaultPalette. Translucent tokens such as
// "indigo-500/25" are alpha-blended over a backdrop so terminals without an
// alpha channel still get a sensible colour.
//
// # Accents
//
// The accent set is closed. Package initialisation checks that every accent
// maps to a palette family with a complete shade scale and panics otherwise,
// so a misconfigured accent can never reach a renderer.
package theme
