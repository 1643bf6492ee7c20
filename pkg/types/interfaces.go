package types

import (
	"io/fs"
)

// FS abstracts filesystem operations for testability
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	AppendFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Pather provides paths for absetup operations
type Pather interface {
	// ProjectRoot returns the root directory of the game project
	ProjectRoot() string

	// UsedFallback reports whether the current directory was used
	// because no explicit root or git repository was found
	UsedFallback() bool

	// ProjectFile returns the path to the project descriptor (project.godot)
	ProjectFile() string

	// AddonsDir returns the path to the engine addons directory
	AddonsDir() string

	// DataDir returns the XDG data directory for absetup
	DataDir() string

	// StateDir returns the XDG state directory for absetup
	StateDir() string

	// LogFilePath returns the path to the absetup log file
	LogFilePath() string
}
