package submodules

import (
	"context"
	"path/filepath"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/git"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// Options defines the options for the Sync command
type Options struct {
	// ProjectRoot is the root directory of the game project
	ProjectRoot string
	// Submodules are the component repositories to register
	Submodules []types.Submodule
	// DryRun previews changes without invoking git
	DryRun bool
	// FileSystem operations interface for testing
	FileSystem types.FS
	// Git overrides the repository handle, used for testing
	Git *git.Git
}

// Sync registers each configured submodule whose destination path does
// not exist yet, then initializes and updates all submodules.
//
// The project root must be a git repository; callers treat the
// ErrGitNotRepo error as a warning and carry on with the remaining
// setup steps.
func Sync(ctx context.Context, opts Options) (*types.SubmodulesResult, error) {
	log := logging.GetLogger("commands.submodules")
	log.Debug().Str("command", "Sync").Int("submodules", len(opts.Submodules)).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	g := opts.Git
	if g == nil {
		g = git.New(opts.ProjectRoot)
	}

	if _, err := fs.Stat(filepath.Join(opts.ProjectRoot, ".git")); err != nil {
		return nil, errors.New(errors.ErrGitNotRepo, "not a git repository; submodules may not work correctly")
	}

	result := &types.SubmodulesResult{}

	for _, sm := range opts.Submodules {
		dest := filepath.Join(opts.ProjectRoot, sm.Path)

		if _, err := fs.Stat(dest); err == nil {
			log.Debug().Str("path", sm.Path).Msg("Submodule path already exists")
			result.Present = append(result.Present, sm)
			continue
		}

		if opts.DryRun {
			result.Added = append(result.Added, sm)
			continue
		}

		log.Info().Str("source", sm.Source).Str("path", sm.Path).Msg("Registering submodule")
		if err := g.SubmoduleAdd(ctx, sm.Source, sm.Path); err != nil {
			return nil, err
		}
		result.Added = append(result.Added, sm)
	}

	if !opts.DryRun {
		if err := g.SubmoduleUpdate(ctx); err != nil {
			return nil, err
		}
		result.Updated = true
	}

	log.Info().
		Int("added", len(result.Added)).
		Int("present", len(result.Present)).
		Msg("Submodules configured")

	return result, nil
}
