package theme

import "fmt"

// AccentID is a closed set of colour accents a variant can be keyed to.
type AccentID string

const (
	AccentIndigo  AccentID = "indigo"
	AccentPurple  AccentID = "purple"
	AccentEmerald AccentID = "emerald"
	AccentRose    AccentID = "rose"
	AccentCyan    AccentID = "cyan"
)

// accentFamilies is the static accent to palette family table.
var accentFamilies = map[AccentID]Family{
	AccentIndigo:  FamilyIndigo,
	AccentPurple:  FamilyPurple,
	AccentEmerald: FamilyEmerald,
	AccentRose:    FamilyRose,
	AccentCyan:    FamilyCyan,
}

var accentOrder = []AccentID{AccentIndigo, AccentPurple, AccentEmerald, AccentRose, AccentCyan}

func init() {
	if err := validateAccents(accentOrder, accentFamilies, DefaultPalette); err != nil {
		panic(err)
	}
}

// validateAccents ensures every accent in the closed set maps to exactly one
// family and that the family has a complete shade scale.
func validateAccents(order []AccentID, table map[AccentID]Family, palette Palette) error {
	if len(order) != len(table) {
		return fmt.Errorf("accent table has %d entries, want %d", len(table), len(order))
	}
	for _, id := range order {
		family, ok := table[id]
		if !ok {
			return fmt.Errorf("accent %q has no palette family", id)
		}
		if err := palette.Validate(family); err != nil {
			return fmt.Errorf("accent %q: %w", id, err)
		}
	}
	return nil
}

// Accents lists the closed accent set in gallery order.
func Accents() []AccentID {
	out := make([]AccentID, len(accentOrder))
	copy(out, accentOrder)
	return out
}

// Known reports whether the accent belongs to the closed set.
func Known(id AccentID) bool {
	_, ok := accentFamilies[id]
	return ok
}

// Family returns the palette family backing an accent.
func (a AccentID) Family() Family {
	return accentFamilies[a]
}

func (a AccentID) String() string {
	return string(a)
}
