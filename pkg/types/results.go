package types

// Submodule describes an external component repository linked at a fixed
// path inside the project tree.
type Submodule struct {
	Source string `koanf:"source" toml:"source" yaml:"source"`
	Path   string `koanf:"path" toml:"path" yaml:"path"`
}

// DirsResult reports the outcome of the directory creation step
type DirsResult struct {
	Created  []string `yaml:"created"`
	Existing []string `yaml:"existing"`
}

// SubmodulesResult reports the outcome of the submodule registration step
type SubmodulesResult struct {
	Added   []Submodule `yaml:"added"`
	Present []Submodule `yaml:"present"`
	Updated bool        `yaml:"updated"`
}

// PathCheck is the presence result for a single required path
type PathCheck struct {
	Path   string `yaml:"path"`
	Exists bool   `yaml:"exists"`
}

// VerifyResult reports the outcome of the structure verification step
type VerifyResult struct {
	Checks   []PathCheck `yaml:"checks"`
	AllExist bool        `yaml:"all_exist"`
}

// PluginsStatus describes what the plugin configuration step did
type PluginsStatus string

const (
	// PluginsAdded means the plugin block was appended to the descriptor
	PluginsAdded PluginsStatus = "added"
	// PluginsPresent means the descriptor already had a plugin section
	PluginsPresent PluginsStatus = "present"
)

// PluginsResult reports the outcome of the plugin configuration step
type PluginsResult struct {
	Status      PluginsStatus `yaml:"status"`
	ProjectFile string        `yaml:"project_file"`
}

// GenConfigResult reports the outcome of the genconfig command
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// SetupResult aggregates the results of a full bootstrap run.
// A nil step result means the step was skipped; step failures are
// collected as warnings rather than aborting the run.
type SetupResult struct {
	Dirs       *DirsResult
	Submodules *SubmodulesResult
	Verify     *VerifyResult
	Plugins    *PluginsResult
	Warnings   []string
}
