package styler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontFamilies(t *testing.T) {
	expected := []string{
		"Arial",
		"Verdana",
		"Helvetica",
		"Times New Roman",
		"Georgia",
		"Courier New",
	}
	assert.Equal(t, expected, FontFamilies())
}

func TestFontSizesNonEmpty(t *testing.T) {
	sizes := FontSizes()
	assert.NotEmpty(t, sizes)
	for _, size := range sizes {
		assert.NotEmpty(t, size)
	}
}

func TestNewSpec(t *testing.T) {
	spec := NewSpec("16px", "#FF0000", "Arial")
	assert.Equal(t, Spec{
		"font-size":   "16px",
		"color":       "#FF0000",
		"font-family": "Arial",
	}, spec)
	assert.Len(t, spec, 3)
}
