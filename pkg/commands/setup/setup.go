package setup

import (
	"context"
	"fmt"

	"github.com/aerobeat/absetup/pkg/commands/dirs"
	"github.com/aerobeat/absetup/pkg/commands/plugins"
	"github.com/aerobeat/absetup/pkg/commands/submodules"
	"github.com/aerobeat/absetup/pkg/commands/verify"
	"github.com/aerobeat/absetup/pkg/config"
	"github.com/aerobeat/absetup/pkg/git"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// Options defines the options for the full bootstrap run
type Options struct {
	// ProjectRoot is the root directory of the game project
	ProjectRoot string
	// Manifest overrides the loaded manifest, used for testing
	Manifest *config.Manifest
	// DryRun previews changes without executing them
	DryRun bool
	// FileSystem operations interface for testing
	FileSystem types.FS
	// Git overrides the repository handle, used for testing
	Git *git.Git
}

// Run executes the full bootstrap sequence: directory creation,
// submodule registration, structure verification, and plugin
// configuration.
//
// Step failures never abort the run; they are collected as warnings and
// the remaining steps still execute. A step that failed leaves its
// result nil.
func Run(ctx context.Context, opts Options) (*types.SetupResult, error) {
	log := logging.GetLogger("commands.setup")
	done := logging.LogOperationStart(log, "setup")
	defer done()

	manifest := opts.Manifest
	if manifest == nil {
		m, err := config.Load(opts.ProjectRoot)
		if err != nil {
			return nil, err
		}
		manifest = m
	}

	result := &types.SetupResult{}

	dirsResult, err := dirs.Create(dirs.Options{
		ProjectRoot: opts.ProjectRoot,
		Directories: manifest.Directories,
		DryRun:      opts.DryRun,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("directory creation had issues: %v", err))
	} else {
		result.Dirs = dirsResult
	}

	subResult, err := submodules.Sync(ctx, submodules.Options{
		ProjectRoot: opts.ProjectRoot,
		Submodules:  manifest.Submodules,
		DryRun:      opts.DryRun,
		FileSystem:  opts.FileSystem,
		Git:         opts.Git,
	})
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("submodule setup had issues, you may need to configure manually: %v", err))
	} else {
		result.Submodules = subResult
	}

	verifyResult, err := verify.Verify(verify.Options{
		ProjectRoot:   opts.ProjectRoot,
		RequiredPaths: manifest.RequiredPaths,
		FileSystem:    opts.FileSystem,
	})
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("structure verification had issues: %v", err))
	} else {
		result.Verify = verifyResult
	}

	pluginsResult, err := plugins.Enable(plugins.Options{
		ProjectRoot: opts.ProjectRoot,
		ProjectFile: manifest.ProjectFile,
		Plugins:     manifest.Plugins.Enabled,
		DryRun:      opts.DryRun,
		FileSystem:  opts.FileSystem,
	})
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("plugin configuration had issues: %v", err))
	} else {
		result.Plugins = pluginsResult
	}

	log.Info().
		Int("warnings", len(result.Warnings)).
		Bool("dry_run", opts.DryRun).
		Msg("Setup finished")

	return result, nil
}
