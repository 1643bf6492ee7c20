// Package godot edits the Godot project descriptor (project.godot).
//
// The descriptor is treated as opaque text: plugin configuration is a
// literal marker check followed by an append. There is no INI parsing.
package godot

import (
	"fmt"
	"strings"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// PluginSectionMarker identifies an existing editor plugin section
const PluginSectionMarker = "[editor_plugins]"

// HasPluginSection reports whether the descriptor already carries an
// editor plugin section
func HasPluginSection(content []byte) bool {
	return strings.Contains(string(content), PluginSectionMarker)
}

// BuildPluginSection renders the editor plugin block for the given
// plugin resource paths
func BuildPluginSection(resources []string) string {
	quoted := make([]string, len(resources))
	for i, r := range resources {
		quoted[i] = fmt.Sprintf("%q", r)
	}

	return fmt.Sprintf("\n%s\nenabled=PackedStringArray(%s)\n",
		PluginSectionMarker, strings.Join(quoted, ", "))
}

// EnablePlugins appends the editor plugin block to the descriptor unless
// a plugin section is already present. It returns true when the block
// was appended.
func EnablePlugins(fs types.FS, projectFile string, resources []string) (bool, error) {
	logger := logging.GetLogger("godot")

	content, err := fs.ReadFile(projectFile)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrProjectFileMissing, "project descriptor %s not found", projectFile)
	}

	if HasPluginSection(content) {
		logger.Debug().Str("file", projectFile).Msg("Plugin section already present")
		return false, nil
	}

	section := BuildPluginSection(resources)
	if err := fs.AppendFile(projectFile, []byte(section), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrProjectFileWrite, "failed to append plugin section to %s", projectFile)
	}

	logger.Info().
		Str("file", projectFile).
		Int("plugins", len(resources)).
		Msg("Plugin section added")

	return true, nil
}
