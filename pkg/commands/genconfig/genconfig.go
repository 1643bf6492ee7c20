// Package genconfig renders the effective bootstrap manifest, optionally
// writing it to setup.toml at the project root as a starting point for
// local overrides.
package genconfig

import (
	"path/filepath"

	"github.com/aerobeat/absetup/pkg/config"
	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/types"
)

// OutputFileName is the manifest file written by --write.
const OutputFileName = "setup.toml"

// Options defines the options for the GenConfig command
type Options struct {
	// ProjectRoot is the root directory of the game project
	ProjectRoot string
	// Write saves the rendered manifest to setup.toml instead of only
	// returning it
	Write bool
	// FileSystem operations interface for testing
	FileSystem types.FS
}

// Run renders the effective manifest for a project root. With Write set
// it also saves the result to setup.toml, refusing to clobber an
// existing file.
func Run(opts Options) (*types.GenConfigResult, error) {
	log := logging.GetLogger("commands.genconfig")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	manifest, err := config.Load(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	content, err := config.Render(manifest)
	if err != nil {
		return nil, err
	}

	result := &types.GenConfigResult{ConfigContent: content}

	if opts.Write {
		target := filepath.Join(opts.ProjectRoot, OutputFileName)
		if _, err := fs.Stat(target); err == nil {
			return nil, errors.Newf(errors.ErrFileCreate,
				"%s already exists, remove it before regenerating", target)
		}
		if err := fs.WriteFile(target, []byte(content), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
		}
		result.FilesWritten = []string{target}
		log.Info().Str("path", target).Msg("Manifest written")
	}

	return result, nil
}
