package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	// init() already ran; the registry should carry the embedded sheet
	require.NotEmpty(t, StyleRegistry)

	for _, name := range []string{"Header", "Success", "Error", "Warning"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %q should be registered", name)
	}

	// The sheet carries only styles the binary consumes
	for _, name := range []string{"Muted", "FilePath", "Bold"} {
		_, ok := StyleRegistry[name]
		assert.False(t, ok, "style %q has no consumer", name)
	}
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		// Restore the embedded sheet for other tests
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	t.Run("valid sheet replaces registry", func(t *testing.T) {
		data := []byte(`
colors:
  red:
    light: "1"
    dark: "9"
styles:
  Alert:
    bold: true
    foreground: red
`)
		require.NoError(t, LoadStylesFromData(data))

		_, ok := StyleRegistry["Alert"]
		assert.True(t, ok)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		err := LoadStylesFromData([]byte("styles: [not a map"))
		assert.Error(t, err)
	})
}

func TestGetStyle(t *testing.T) {
	// Known style renders without panicking
	out := GetStyle("Error").Render("boom")
	assert.Contains(t, out, "boom")

	// Unknown style falls back to a plain style
	assert.Equal(t, "plain", GetStyle("DoesNotExist").Render("plain"))
}
