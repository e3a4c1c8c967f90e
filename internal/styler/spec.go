// Package styler builds and applies font styles against the designer host.
package styler

// Spec maps CSS property names to values for one apply action.
type Spec map[string]string

// NewSpec builds the property map for a single apply action. It always
// carries exactly the three font properties the panel controls.
func NewSpec(size, color, family string) Spec {
	return Spec{
		"font-size":   size,
		"color":       color,
		"font-family": family,
	}
}
