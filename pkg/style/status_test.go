package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLine(t *testing.T) {
	// Tests run with stdout redirected, so lines come back unstyled.
	t.Run("present path gets a checkmark", func(t *testing.T) {
		line := CheckLine("src", true)
		assert.Contains(t, line, GlyphCheck)
		assert.Contains(t, line, "src")
		assert.NotContains(t, line, "will be created")
	})

	t.Run("missing path gets a cross and hint", func(t *testing.T) {
		line := CheckLine("addons/aerobeat-core/src/interfaces/input_provider.gd", false)
		assert.Contains(t, line, GlyphCross)
		assert.Contains(t, line, "(will be created)")
	})
}

func TestStepLine(t *testing.T) {
	assert.Contains(t, StepLine(StatusCreated, "Created: src"), GlyphCheck)
	assert.Contains(t, StepLine(StatusError, "submodule add failed"), GlyphCross)
	assert.Contains(t, StepLine(StatusSkipped, "skipped"), GlyphCheck)
}

func TestStatusStyle(t *testing.T) {
	// Every status must map to a usable style
	for _, s := range []Status{StatusPresent, StatusMissing, StatusCreated, StatusSkipped, StatusError} {
		style := StatusStyle(s)
		assert.NotNil(t, style)
		assert.True(t, strings.Contains(style.Sprint("x"), "x"))
	}
}
