package submodules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerobeat/absetup/pkg/errors"
	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/git"
	"github.com/aerobeat/absetup/pkg/testutil"
	"github.com/aerobeat/absetup/pkg/types"
)

var testSubmodules = []types.Submodule{
	{Source: "../aerobeat-core", Path: "addons/aerobeat-core"},
	{Source: "../aerobeat-input-mediapipe-python", Path: "addons/aerobeat-input-mediapipe"},
}

func gitRepoFS(t *testing.T) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/project/.git", 0755))
	return fs
}

func TestSync(t *testing.T) {
	t.Run("registers missing submodules and updates", func(t *testing.T) {
		fs := gitRepoFS(t)
		runner := testutil.NewRecordingGitRunner()

		result, err := Sync(context.Background(), Options{
			ProjectRoot: "/project",
			Submodules:  testSubmodules,
			FileSystem:  fs,
			Git:         git.NewWithRunner("/project", runner),
		})
		require.NoError(t, err)

		assert.Equal(t, testSubmodules, result.Added)
		assert.Empty(t, result.Present)
		assert.True(t, result.Updated)

		assert.Equal(t, []string{
			"submodule add ../aerobeat-core addons/aerobeat-core",
			"submodule add ../aerobeat-input-mediapipe-python addons/aerobeat-input-mediapipe",
			"submodule update --init --recursive",
		}, runner.CommandLines())
	})

	t.Run("existing destinations are not re-added", func(t *testing.T) {
		fs := gitRepoFS(t)
		require.NoError(t, fs.MkdirAll("/project/addons/aerobeat-core", 0755))
		runner := testutil.NewRecordingGitRunner()

		result, err := Sync(context.Background(), Options{
			ProjectRoot: "/project",
			Submodules:  testSubmodules,
			FileSystem:  fs,
			Git:         git.NewWithRunner("/project", runner),
		})
		require.NoError(t, err)

		assert.Equal(t, []types.Submodule{testSubmodules[0]}, result.Present)
		assert.Equal(t, []types.Submodule{testSubmodules[1]}, result.Added)

		assert.Equal(t, []string{
			"submodule add ../aerobeat-input-mediapipe-python addons/aerobeat-input-mediapipe",
			"submodule update --init --recursive",
		}, runner.CommandLines())
	})

	t.Run("not a git repository", func(t *testing.T) {
		fs := filesystem.NewMemory()
		runner := testutil.NewRecordingGitRunner()

		_, err := Sync(context.Background(), Options{
			ProjectRoot: "/project",
			Submodules:  testSubmodules,
			FileSystem:  fs,
			Git:         git.NewWithRunner("/project", runner),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrGitNotRepo))
		assert.Empty(t, runner.Calls, "git must not be invoked outside a repository")
	})

	t.Run("add failure propagates", func(t *testing.T) {
		fs := gitRepoFS(t)
		runner := testutil.NewRecordingGitRunner()
		runner.Errors["submodule add"] = errors.New(errors.ErrGitCommand, "repository not found")

		_, err := Sync(context.Background(), Options{
			ProjectRoot: "/project",
			Submodules:  testSubmodules,
			FileSystem:  fs,
			Git:         git.NewWithRunner("/project", runner),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubmoduleAdd))
	})

	t.Run("dry run skips git entirely", func(t *testing.T) {
		fs := gitRepoFS(t)
		runner := testutil.NewRecordingGitRunner()

		result, err := Sync(context.Background(), Options{
			ProjectRoot: "/project",
			Submodules:  testSubmodules,
			DryRun:      true,
			FileSystem:  fs,
			Git:         git.NewWithRunner("/project", runner),
		})
		require.NoError(t, err)

		assert.Equal(t, testSubmodules, result.Added)
		assert.False(t, result.Updated)
		assert.Empty(t, runner.Calls)
	})
}
