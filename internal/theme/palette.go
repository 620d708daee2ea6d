package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Family identifies a Tailwind-style colour family.
type Family string

const (
	FamilyGray    Family = "gray"
	FamilyIndigo  Family = "indigo"
	FamilyPurple  Family = "purple"
	FamilyEmerald Family = "emerald"
	FamilyRose    Family = "rose"
	FamilyCyan    Family = "cyan"
	FamilyAmber   Family = "amber"
	FamilyGreen   Family = "green"
	FamilyBlue    Family = "blue"
	FamilyPink    Family = "pink"
	FamilyOrange  Family = "orange"
	FamilyYellow  Family = "yellow"
	FamilyWhite   Family = "white"
	FamilyBlack   Family = "black"
)

// Shade is a position on a ten step scale, 50 (lightest) through 900 (darkest).
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
	shadeCount
)

var shadeNumbers = [shadeCount]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Number returns the Tailwind numbering for the shade (50, 100, ... 900).
func (s Shade) Number() int {
	if s < 0 || s >= shadeCount {
		return 0
	}
	return shadeNumbers[s]
}

// Shades represents a colour scale with ten shades from lightest to darkest.
type Shades struct {
	shades [shadeCount]lipgloss.Color
}

// NewShades creates a shade scale from the provided colours.
// Colours should be ordered from lightest to darkest. Accepts up to 10 colours.
func NewShades(colors ...lipgloss.Color) Shades {
	var s Shades
	for i := 0; i < len(colors) && i < int(shadeCount); i++ {
		s.shades[i] = colors[i]
	}
	return s
}

// uniform builds a scale where every shade is the same colour.
func uniform(c lipgloss.Color) Shades {
	var s Shades
	for i := range s.shades {
		s.shades[i] = c
	}
	return s
}

// Color returns the colour at the specified shade.
// Returns an empty string if the shade is out of bounds.
func (s Shades) Color(shade Shade) lipgloss.Color {
	if shade < 0 || shade >= shadeCount {
		return ""
	}
	return s.shades[shade]
}

func (s Shades) complete() bool {
	for _, c := range s.shades {
		if c == "" {
			return false
		}
	}
	return true
}

// Palette maps colour families to their shade scales.
type Palette map[Family]Shades

// Color looks up the hex value of a family at a shade.
func (p Palette) Color(family Family, shade Shade) (lipgloss.Color, bool) {
	scale, ok := p[family]
	if !ok {
		return "", false
	}
	c := scale.Color(shade)
	return c, c != ""
}

// Validate reports the first family that is missing or has an incomplete scale.
func (p Palette) Validate(families ...Family) error {
	for _, f := range families {
		scale, ok := p[f]
		if !ok {
			return fmt.Errorf("palette family %q is not defined", f)
		}
		if !scale.complete() {
			return fmt.Errorf("palette family %q has an incomplete shade scale", f)
		}
	}
	return nil
}

// DefaultPalette is the Tailwind colour table every token resolves against.
var DefaultPalette = Palette{
	FamilyGray: NewShades(
		"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af",
		"#6b7280", "#4b5563", "#374151", "#1f2937", "#111827",
	),
	FamilyIndigo: NewShades(
		"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8",
		"#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81",
	),
	FamilyPurple: NewShades(
		"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
		"#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87",
	),
	FamilyEmerald: NewShades(
		"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399",
		"#10b981", "#059669", "#047857", "#065f46", "#064e3b",
	),
	FamilyRose: NewShades(
		"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185",
		"#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337",
	),
	FamilyCyan: NewShades(
		"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
		"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
	),
	FamilyAmber: NewShades(
		"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
		"#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f",
	),
	FamilyGreen: NewShades(
		"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
		"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
	),
	FamilyBlue: NewShades(
		"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
		"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
	),
	FamilyPink: NewShades(
		"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6",
		"#ec4899", "#db2777", "#be185d", "#9d174d", "#831843",
	),
	FamilyOrange: NewShades(
		"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c",
		"#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12",
	),
	FamilyYellow: NewShades(
		"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15",
		"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
	),
	FamilyWhite: uniform("#ffffff"),
	FamilyBlack: uniform("#000000"),
}
