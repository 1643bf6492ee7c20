package git

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerobeat/absetup/pkg/errors"
)

// fakeRunner records invocations and replays canned results
type fakeRunner struct {
	calls  [][]string
	output string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.output, f.err
}

func TestSubmoduleAdd(t *testing.T) {
	t.Run("invokes git submodule add", func(t *testing.T) {
		runner := &fakeRunner{}
		g := NewWithRunner("/repo", runner)

		err := g.SubmoduleAdd(context.Background(), "../aerobeat-core", "addons/aerobeat-core")
		require.NoError(t, err)

		require.Len(t, runner.calls, 1)
		assert.Equal(t, []string{"submodule", "add", "../aerobeat-core", "addons/aerobeat-core"}, runner.calls[0])
	})

	t.Run("wraps runner failures", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New(errors.ErrGitCommand, "git submodule add failed")}
		g := NewWithRunner("/repo", runner)

		err := g.SubmoduleAdd(context.Background(), "../missing", "addons/missing")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubmoduleAdd))
	})
}

func TestSubmoduleUpdate(t *testing.T) {
	t.Run("invokes git submodule update", func(t *testing.T) {
		runner := &fakeRunner{output: "Submodule path 'addons/aerobeat-core': checked out"}
		g := NewWithRunner("/repo", runner)

		err := g.SubmoduleUpdate(context.Background())
		require.NoError(t, err)

		require.Len(t, runner.calls, 1)
		assert.Equal(t, []string{"submodule", "update", "--init", "--recursive"}, runner.calls[0])
	})

	t.Run("wraps runner failures", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New(errors.ErrGitCommand, "fatal: not a git repository")}
		g := NewWithRunner("/repo", runner)

		err := g.SubmoduleUpdate(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubmoduleUpdate))
	})
}

func TestToplevel(t *testing.T) {
	t.Run("trims output", func(t *testing.T) {
		runner := &fakeRunner{output: "/home/dev/aerobeat-assembly\n"}
		g := NewWithRunner("/home/dev/aerobeat-assembly/src", runner)

		root, err := g.Toplevel(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/home/dev/aerobeat-assembly", root)
	})

	t.Run("empty output is an error", func(t *testing.T) {
		runner := &fakeRunner{output: "  \n"}
		g := NewWithRunner("/repo", runner)

		_, err := g.Toplevel(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestCLIRunnerErrorDetail(t *testing.T) {
	// Running against a directory that is not a repository exercises the
	// real git binary; skip when git is unavailable.
	g := New(t.TempDir())

	_, err := g.Toplevel(context.Background())
	if err == nil {
		t.Skip("temp dir unexpectedly inside a git repository")
	}

	if !errors.IsErrorCode(err, errors.ErrGitCommand) && !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("unexpected error code %s for %v", errors.GetErrorCode(err), err)
	}
	assert.False(t, strings.Contains(err.Error(), "panic"))
}
