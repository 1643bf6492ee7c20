package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerobeat/absetup/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		projectRoot string
		envSetup    map[string]string
		validate    func(t *testing.T, p *Paths)
		wantErr     bool
	}{
		{
			name:        "explicit project root",
			projectRoot: "/tmp/aerobeat",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/tmp/aerobeat", p.ProjectRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name: "from AEROBEAT_ROOT env",
			envSetup: map[string]string{
				EnvProjectRoot: "/env/aerobeat",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/env/aerobeat", p.ProjectRoot())
			},
		},
		{
			name: "git repository or fallback",
			validate: func(t *testing.T, p *Paths) {
				// This test will either find the git root if we're in a git repo,
				// or fall back to the current directory
				assert.NotEmpty(t, p.ProjectRoot())
				assert.True(t, filepath.IsAbs(p.ProjectRoot()), "path should be absolute")
			},
		},
		{
			name:        "expand tilde in explicit path",
			projectRoot: "~/aerobeat-assembly",
			validate: func(t *testing.T, p *Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "aerobeat-assembly"), p.ProjectRoot())
			},
		},
		{
			name:        "custom data dir",
			projectRoot: "/tmp/aerobeat",
			envSetup: map[string]string{
				EnvDataDir: "/custom/data",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/custom/data", p.DataDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant environment variables first
			t.Setenv(EnvProjectRoot, "")
			t.Setenv(EnvDataDir, "")

			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.projectRoot)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestProjectPaths(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	p, err := New("/tmp/aerobeat")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/tmp/aerobeat", ProjectFileName), p.ProjectFile())
	assert.Equal(t, filepath.Join("/tmp/aerobeat", AddonsDirName), p.AddonsDir())
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	p, err := New("/tmp/aerobeat")
	require.NoError(t, err)

	assert.Equal(t, "/custom/state/absetup/absetup.log", p.LogFilePath())
}

func TestNormalizePath(t *testing.T) {
	p, err := New("/tmp/aerobeat")
	require.NoError(t, err)

	t.Run("empty path errors", func(t *testing.T) {
		_, err := p.NormalizePath("")
		assert.Error(t, err)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := p.NormalizePath("scenes")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("tilde expands", func(t *testing.T) {
		got, err := p.NormalizePath("~/project")
		require.NoError(t, err)
		homeDir, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(homeDir, "project"), got)
	})
}

func TestIsInProject(t *testing.T) {
	p, err := New("/tmp/aerobeat")
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"/tmp/aerobeat/src", true},
		{"/tmp/aerobeat/addons/aerobeat-core", true},
		{"/tmp/other", false},
		{"/tmp/aerobeat", true},
	}

	for _, tt := range tests {
		got, err := p.IsInProject(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "IsInProject(%q)", tt.path)
	}
}

func TestSatisfiesPather(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	p, err := New("/tmp/aerobeat")
	require.NoError(t, err)

	// Consumers read paths through the shared interface
	var pather types.Pather = p
	assert.Equal(t, p.ProjectRoot(), pather.ProjectRoot())
	assert.Equal(t, p.ProjectFile(), pather.ProjectFile())
	assert.Equal(t, p.LogFilePath(), pather.LogFilePath())
}

func TestExpandHome(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	assert.Equal(t, homeDir, ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandHome("~/x"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
	assert.Equal(t, "", ExpandHome(""))
}
