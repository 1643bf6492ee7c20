package dirs

import (
	"path/filepath"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// Options defines the options for the Create command
type Options struct {
	// ProjectRoot is the root directory of the game project
	ProjectRoot string
	// Directories are the relative paths to create
	Directories []string
	// DryRun previews changes without touching the filesystem
	DryRun bool
	// FileSystem operations interface for testing
	FileSystem types.FS
}

// Create makes each configured directory under the project root.
// Directories that already exist are reported, not recreated.
func Create(opts Options) (*types.DirsResult, error) {
	log := logging.GetLogger("commands.dirs")
	log.Debug().Str("command", "Create").Strs("directories", opts.Directories).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &types.DirsResult{}

	for _, dir := range opts.Directories {
		path := filepath.Join(opts.ProjectRoot, dir)

		if _, err := fs.Stat(path); err == nil {
			log.Debug().Str("directory", dir).Msg("Directory already exists")
			result.Existing = append(result.Existing, dir)
			continue
		}

		if opts.DryRun {
			result.Created = append(result.Created, dir)
			continue
		}

		if err := fs.MkdirAll(path, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
		}

		log.Info().Str("directory", dir).Msg("Directory created")
		result.Created = append(result.Created, dir)
	}

	log.Debug().
		Int("created", len(result.Created)).
		Int("existing", len(result.Existing)).
		Msg("Command finished")

	return result, nil
}
