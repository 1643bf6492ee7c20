package plugins

import (
	"path/filepath"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/godot"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// Options defines the options for the Enable command
type Options struct {
	// ProjectRoot is the root directory of the game project
	ProjectRoot string
	// ProjectFile is the descriptor filename relative to the root
	ProjectFile string
	// Plugins are the plugin resource paths to enable
	Plugins []string
	// DryRun previews changes without touching the descriptor
	DryRun bool
	// FileSystem operations interface for testing
	FileSystem types.FS
}

// Enable appends the editor plugin block to the project descriptor.
// A descriptor that already carries a plugin section is left untouched.
func Enable(opts Options) (*types.PluginsResult, error) {
	log := logging.GetLogger("commands.plugins")
	log.Debug().Str("command", "Enable").Int("plugins", len(opts.Plugins)).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	projectFile := filepath.Join(opts.ProjectRoot, opts.ProjectFile)
	result := &types.PluginsResult{ProjectFile: projectFile}

	content, err := fs.ReadFile(projectFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProjectFileMissing, "project descriptor %s not found", projectFile)
	}

	if godot.HasPluginSection(content) {
		log.Info().Str("file", projectFile).Msg("Plugin configuration already exists")
		result.Status = types.PluginsPresent
		return result, nil
	}

	if opts.DryRun {
		result.Status = types.PluginsAdded
		return result, nil
	}

	if _, err := godot.EnablePlugins(fs, projectFile, opts.Plugins); err != nil {
		return nil, err
	}

	log.Info().Str("file", projectFile).Msg("Plugin configuration added")
	result.Status = types.PluginsAdded
	return result, nil
}
