package verify

import (
	"path/filepath"

	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// Options defines the options for the Verify command
type Options struct {
	// ProjectRoot is the root directory of the game project
	ProjectRoot string
	// RequiredPaths are the relative paths whose presence is checked
	RequiredPaths []string
	// FileSystem operations interface for testing
	FileSystem types.FS
}

// Verify checks each required path and reports which exist. It never
// mutates the project; missing paths are reported, not created.
func Verify(opts Options) (*types.VerifyResult, error) {
	log := logging.GetLogger("commands.verify")
	log.Debug().Str("command", "Verify").Int("paths", len(opts.RequiredPaths)).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &types.VerifyResult{AllExist: true}

	for _, rel := range opts.RequiredPaths {
		_, err := fs.Stat(filepath.Join(opts.ProjectRoot, rel))
		exists := err == nil

		result.Checks = append(result.Checks, types.PathCheck{
			Path:   rel,
			Exists: exists,
		})

		if !exists {
			result.AllExist = false
			log.Debug().Str("path", rel).Msg("Required path missing")
		}
	}

	log.Info().
		Int("checked", len(result.Checks)).
		Bool("all_exist", result.AllExist).
		Msg("Structure verified")

	return result, nil
}
