package variants

import (
	"fmt"
	"strings"

	"github.com/devlance074/pricing-ui-kit/internal/catalog"
	"github.com/devlance074/pricing-ui-kit/internal/theme"
	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

// NewGallery builds the five-variant registry over a catalog. Every variant
// must have a page in the catalog.
func NewGallery(cat *catalog.Catalog) (*Registry, error) {
	descs := []Descriptor{
		{ID: IDClassic, DisplayName: "Classic", Accent: theme.AccentIndigo},
		{ID: IDGlass, DisplayName: "Glass", Accent: theme.AccentPurple},
		{ID: IDCentered, DisplayName: "Minimal", Accent: theme.AccentEmerald},
		{ID: IDSplit, DisplayName: "Split", Accent: theme.AccentRose},
		{ID: IDTech, DisplayName: "Tech", Accent: theme.AccentCyan},
	}

	for i := range descs {
		page, ok := cat.Page(descs[i].ID)
		if !ok {
			return nil, pkerrors.NewValidationError(
				fmt.Sprintf("pages.%s", descs[i].ID),
				fmt.Sprintf("catalog has no page for this variant (pages: %s)", strings.Join(cat.IDs(), ", ")),
				nil,
			)
		}
		descs[i].New = factoryFor(descs[i].ID, descs[i].Accent, page)
	}

	return NewRegistry(descs...)
}

func factoryFor(id string, accent theme.AccentID, page catalog.Page) Factory {
	switch id {
	case IDGlass:
		return func(m Mount) View { return NewGlass(page, accent, m) }
	case IDCentered:
		return func(m Mount) View { return NewCentered(page, accent, m) }
	case IDSplit:
		return func(m Mount) View { return NewSplit(page, accent, m) }
	case IDTech:
		return func(m Mount) View { return NewTech(page, accent, m) }
	default:
		return func(m Mount) View { return NewClassic(page, accent, m) }
	}
}

// DefaultRegistry builds the gallery over the embedded catalog. It panics on
// a wiring defect.
func DefaultRegistry() *Registry {
	r, err := NewGallery(catalog.Default())
	if err != nil {
		panic(fmt.Sprintf("variants: %v", err))
	}
	return r
}
