package styler

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// ResolveColor picks between a freeform hex value and a preset dropdown value.
// A valid 3- or 6-digit hex input wins verbatim; anything else falls back to
// the dropdown value unchanged, even when that is empty. It never fails: the
// host's style engine interprets whatever string comes out.
func ResolveColor(hexInput, dropdownValue string) string {
	if hexInput != "" && hexColorPattern.MatchString(hexInput) {
		return hexInput
	}
	return dropdownValue
}

// IsHexColor reports whether value is a 3- or 6-digit hex color.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// ColorPreset is a named dropdown color.
type ColorPreset struct {
	Name string
	Hex  string
}

// ColorPresets returns the preset colors offered by the color dropdown.
func ColorPresets() []ColorPreset {
	return []ColorPreset{
		{Name: "Black", Hex: "#000000"},
		{Name: "White", Hex: "#FFFFFF"},
		{Name: "Red", Hex: "#FF0000"},
		{Name: "Green", Hex: "#008000"},
		{Name: "Blue", Hex: "#0000FF"},
		{Name: "Gray", Hex: "#808080"},
	}
}
