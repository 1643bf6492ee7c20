// Package paths provides centralized path handling for absetup.
// It resolves the game project root and implements XDG Base Directory
// compliance for absetup's own files.
package paths

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/git"
	"github.com/aerobeat/absetup/pkg/types"
)

// Environment variable names
const (
	// EnvProjectRoot is the primary environment variable for the project location
	EnvProjectRoot = "AEROBEAT_ROOT"

	// EnvDataDir overrides the XDG data directory for absetup
	EnvDataDir = "ABSETUP_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for absetup-specific files
	AppDirName = "absetup"

	// ProjectFileName is the name of the engine project descriptor
	ProjectFileName = "project.godot"

	// AddonsDirName is the directory holding engine addons and submodules
	AddonsDirName = "addons"

	// LogFileName is the name of the log file
	LogFileName = "absetup.log"
)

// Paths provides centralized path management for absetup.
// Consumers that only read paths accept the types.Pather interface.
type Paths struct {
	// projectRoot is the root directory of the game project
	projectRoot string

	// xdgData is the XDG data directory
	xdgData string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

var _ types.Pather = (*Paths)(nil)

// New creates a new Paths instance with the given project root.
// If projectRoot is empty, it will be determined from environment
// variables, the enclosing git repository, or the current directory.
func New(projectRoot string) (*Paths, error) {
	p := &Paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = expandHome(projectRoot)
		p.usedFallback = false
	}

	// Ensure project root is absolute
	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *Paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	// XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

// findProjectRoot determines the project root using the following priority:
// 1. AEROBEAT_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The bool return reports whether the current working directory was used
// as fallback so callers can display a warning.
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return git.New(cwd).Toplevel(context.Background())
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ProjectRoot returns the root directory of the game project
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// ProjectFile returns the path to the engine project descriptor
func (p *Paths) ProjectFile() string {
	return filepath.Join(p.projectRoot, ProjectFileName)
}

// AddonsDir returns the path to the engine addons directory
func (p *Paths) AddonsDir() string {
	return filepath.Join(p.projectRoot, AddonsDirName)
}

// DataDir returns the XDG data directory for absetup
func (p *Paths) DataDir() string {
	return p.xdgData
}

// StateDir returns the XDG state directory for absetup
func (p *Paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the absetup log file
// Respects XDG_STATE_HOME if set
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *Paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// IsInProject checks if a path is within the project root
func (p *Paths) IsInProject(path string) (bool, error) {
	normalized, err := p.NormalizePath(path)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(p.projectRoot, normalized)
	if err != nil {
		return false, nil
	}

	// If the relative path starts with .., it's outside the project
	return !strings.HasPrefix(rel, ".."), nil
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}
