// Package git shells out to the git command-line tool for the few
// version-control operations the bootstrap needs: submodule registration
// and update. There is deliberately no in-process git implementation;
// submodule handling is a thin wrapper over the external tool.
package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/logging"
)

// Runner executes a git command in a directory and returns its combined
// output. Tests substitute a recording implementation.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// cliRunner runs the real git binary
type cliRunner struct{}

// NewCLIRunner returns a Runner backed by the git binary on PATH
func NewCLIRunner() Runner {
	return &cliRunner{}
}

func (r *cliRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	logging.LogCommand("git", args)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), errors.Wrapf(err, errors.ErrGitCommand, "git %s failed", strings.Join(args, " ")).
			WithDetail("output", strings.TrimSpace(string(output)))
	}

	return string(output), nil
}

// Git performs repository operations rooted at a fixed directory
type Git struct {
	dir    string
	runner Runner
	logger zerolog.Logger
}

// New creates a Git handle for the given repository directory
func New(dir string) *Git {
	return NewWithRunner(dir, NewCLIRunner())
}

// NewWithRunner creates a Git handle with a custom command runner
func NewWithRunner(dir string, runner Runner) *Git {
	return &Git{
		dir:    dir,
		runner: runner,
		logger: logging.GetLogger("git"),
	}
}

// Dir returns the repository directory the handle operates on
func (g *Git) Dir() string {
	return g.dir
}

// Toplevel returns the root of the enclosing git repository
func (g *Git) Toplevel(ctx context.Context) (string, error) {
	output, err := g.runner.Run(ctx, g.dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}

	root := strings.TrimSpace(output)
	if root == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return root, nil
}

// SubmoduleAdd registers source as a submodule at path (relative to the
// repository root)
func (g *Git) SubmoduleAdd(ctx context.Context, source, path string) error {
	g.logger.Info().
		Str("source", source).
		Str("path", path).
		Msg("Adding submodule")

	output, err := g.runner.Run(ctx, g.dir, "submodule", "add", source, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSubmoduleAdd, "failed to add submodule %s", source).
			WithDetail("path", path)
	}

	if out := strings.TrimSpace(output); out != "" {
		g.logger.Debug().Str("output", out).Msg("git submodule add")
	}

	return nil
}

// SubmoduleUpdate initializes and updates all registered submodules,
// recursively
func (g *Git) SubmoduleUpdate(ctx context.Context) error {
	g.logger.Info().Msg("Updating submodules")

	output, err := g.runner.Run(ctx, g.dir, "submodule", "update", "--init", "--recursive")
	if err != nil {
		return errors.Wrap(err, errors.ErrSubmoduleUpdate, "failed to update submodules")
	}

	if out := strings.TrimSpace(output); out != "" {
		g.logger.Debug().Str("output", out).Msg("git submodule update")
	}

	return nil
}
