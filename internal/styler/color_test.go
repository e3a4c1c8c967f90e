package styler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	t.Run("valid hex wins over dropdown", func(t *testing.T) {
		for _, hex := range []string{"#FF0000", "#ff0000", "#AbC", "#000", "#123456", "#FFF"} {
			assert.Equal(t, hex, ResolveColor(hex, "#00FF00"), "hex %q should be returned verbatim", hex)
		}
	})

	t.Run("invalid hex falls back to dropdown", func(t *testing.T) {
		for _, input := range []string{"", "FF0000", "#FF00", "#GGGGGG", "#12345", "#1234567", "red", "# FF0000"} {
			assert.Equal(t, "#00FF00", ResolveColor(input, "#00FF00"), "input %q should fall back", input)
		}
	})

	t.Run("empty dropdown passes through", func(t *testing.T) {
		assert.Equal(t, "", ResolveColor("not-a-color", ""))
		assert.Equal(t, "", ResolveColor("", ""))
	})
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#1A2b3C"))
	assert.True(t, IsHexColor("#abc"))
	assert.False(t, IsHexColor("1A2b3C"))
	assert.False(t, IsHexColor("#ab"))
	assert.False(t, IsHexColor(""))
}

func TestColorPresetsAreValidHex(t *testing.T) {
	presets := ColorPresets()
	assert.NotEmpty(t, presets)
	for _, p := range presets {
		assert.True(t, IsHexColor(p.Hex), "preset %s has invalid hex %q", p.Name, p.Hex)
		assert.NotEmpty(t, p.Name)
	}
}
