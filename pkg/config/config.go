// Package config loads the bootstrap manifest: the directories, submodules,
// required paths, and plugin resources the setup commands operate on.
//
// Configuration is layered: embedded defaults first, then an optional
// setup.toml (or .absetup.toml) at the project root.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/types"
)

// Manifest override files searched at the project root, in order.
var overrideFiles = []string{"setup.toml", ".absetup.toml"}

// PluginConfig holds the editor plugin resources enabled in the
// project descriptor
type PluginConfig struct {
	Enabled []string `koanf:"enabled" toml:"enabled"`
}

// Manifest is the bootstrap manifest driving all setup steps
type Manifest struct {
	ProjectFile   string            `koanf:"project_file" toml:"project_file"`
	Directories   []string          `koanf:"directories" toml:"directories"`
	RequiredPaths []string          `koanf:"required_paths" toml:"required_paths"`
	Submodules    []types.Submodule `koanf:"submodules" toml:"submodules"`
	Plugins       PluginConfig      `koanf:"plugins" toml:"plugins"`
}

// Load returns the manifest for a project root: embedded defaults merged
// with the first override file found at the root.
func Load(projectRoot string) (*Manifest, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultManifest}, toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load embedded manifest")
	}

	for _, filename := range overrideFiles {
		path := filepath.Join(projectRoot, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load manifest from %s", path)
			}
			break
		}
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal manifest")
	}

	return &m, nil
}

// Default returns the embedded manifest with no overrides applied
func Default() (*Manifest, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultManifest}, toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load embedded manifest")
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal manifest")
	}

	return &m, nil
}
