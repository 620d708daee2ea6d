// Package components provides the token-aware building blocks the pricing
// variants are drawn with.
//
// # Overview
//
// Components are small structs with fluent With* setters. Each one renders in
// two ways:
//
//	output := card.View()                // light indigo defaults
//	output := card.ViewWithContext(ctx)  // explicit tokens, renderer and width
//
// # Render Context
//
// A RenderContext bundles the accent TokenSet, the neutral Surface for the
// mode, the lipgloss renderer of the target terminal and the available width:
//
//	ctx := components.NewContext(theme.AccentRose, dark).
//		WithRenderer(renderer).
//		WithWidth(60)
//
// Styles always start from ctx.NewStyle so that SSH sessions render with the
// colour profile of the remote terminal rather than the server's stdout.
//
// # Roles and Modifiers
//
// Components never pick hex values. They ask for a Role (RoleAccent,
// RoleRing, RoleTextMuted, ...) and the context maps it to a token and then
// to a colour. Extra styling is layered with StyleFunc modifiers:
//
//	components.NewText("Most Popular").WithAppliers(
//		components.Foreground(components.RoleAccent),
//		components.Bold(),
//	)
//
// # Core Components
//
//   - Text, Heading, Body, Muted, Accent: styled text
//   - Badge: pill labels (filled, soft, outline)
//   - Button: call-to-action labels (primary, secondary, outline)
//   - Card: bordered box, optionally highlighted with a badge
//   - Stack: vertical or horizontal arrangement with gaps
//   - Divider: horizontal rules
//   - Toggle: two-position switch
//   - Checklist: check-marked feature list
//   - PriceTag: amount, period and optional struck-through original
package components
