package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aerobeat/absetup/docs"
	"github.com/aerobeat/absetup/internal/version"
	"github.com/aerobeat/absetup/pkg/cobrax/topics"
	"github.com/aerobeat/absetup/pkg/commands/dirs"
	"github.com/aerobeat/absetup/pkg/commands/genconfig"
	"github.com/aerobeat/absetup/pkg/commands/plugins"
	"github.com/aerobeat/absetup/pkg/commands/setup"
	"github.com/aerobeat/absetup/pkg/commands/submodules"
	"github.com/aerobeat/absetup/pkg/commands/verify"
	"github.com/aerobeat/absetup/pkg/config"
	"github.com/aerobeat/absetup/pkg/filesystem"
	"github.com/aerobeat/absetup/pkg/logging"
	"github.com/aerobeat/absetup/pkg/paths"
	"github.com/aerobeat/absetup/pkg/report"
	"github.com/aerobeat/absetup/pkg/style"
	"github.com/aerobeat/absetup/pkg/types"
	"github.com/aerobeat/absetup/pkg/ui"
	"github.com/aerobeat/absetup/pkg/ui/styles"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		rootDir   string
	)

	rootCmd := &cobra.Command{
		Use:   "absetup",
		Short: "Bootstrap the AeroBeat development environment",
		Long: `absetup prepares a fresh AeroBeat checkout for development: it creates
the expected working directories, registers the engine addon repositories
as git submodules, verifies the project structure, and enables the editor
plugins in project.godot.

Every step is idempotent, so re-running absetup on a configured checkout
is safe.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Local .env files carry AEROBEAT_ROOT for out-of-tree checkouts
			_ = godotenv.Load()
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (overrides AEROBEAT_ROOT and git detection)")

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newDirsCmd())
	rootCmd.AddCommand(newSubmodulesCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newPluginsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topics are embedded in the binary, so initialization never depends
	// on the install location
	initHelpTopics(rootCmd, docs.HelpFS, docs.HelpDir)

	return rootCmd
}

// initHelpTopics attaches the topic help system. A scan failure leaves
// Cobra's default help in place rather than aborting the CLI.
func initHelpTopics(rootCmd *cobra.Command, fsys fs.FS, dir string) {
	err := topics.Initialize(rootCmd, fsys, dir, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}
}

// initPaths resolves the project root and warns when falling back to
// the current directory
func initPaths(cmd *cobra.Command) (types.Pather, error) {
	rootDir, _ := cmd.Root().PersistentFlags().GetString("root")

	p, err := paths.New(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, "Warning: Not in a git repository and %s not set.\n", paths.EnvProjectRoot)
		fmt.Fprintf(os.Stderr, "Using current directory: %s\n", p.ProjectRoot())
		fmt.Fprintf(os.Stderr, "For better results, either:\n")
		fmt.Fprintf(os.Stderr, "  - Run from within the AeroBeat git repository\n")
		fmt.Fprintf(os.Stderr, "  - Set the %s environment variable\n", paths.EnvProjectRoot)
		fmt.Fprintf(os.Stderr, "  - Pass --root explicitly\n\n")
	}

	return p, nil
}

// loadManifest resolves paths and loads the effective manifest for a command
func loadManifest(cmd *cobra.Command) (types.Pather, *config.Manifest, error) {
	p, err := initPaths(cmd)
	if err != nil {
		return nil, nil, err
	}

	manifest, err := config.Load(p.ProjectRoot())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	return p, manifest, nil
}

func isDryRun(cmd *cobra.Command) bool {
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	return dryRun
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("absetup version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Run the full development environment bootstrap",
		Long: `Setup runs every bootstrap step in order: directory creation, submodule
registration, structure verification, and plugin configuration.

Failing steps print a warning and the remaining steps still run, so setup
can repair a partially configured checkout.`,
		Example: `  # Bootstrap the checkout
  absetup setup

  # Preview without changing anything
  absetup setup --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, manifest, err := loadManifest(cmd)
			if err != nil {
				return err
			}

			dryRun := isDryRun(cmd)
			log.Info().
				Str("project_root", p.ProjectRoot()).
				Bool("dry_run", dryRun).
				Msg("Running setup")

			fmt.Printf("%s\n\n", styles.GetStyle("Header").Render("Setting up AeroBeat development environment"))

			result, err := setup.Run(cmd.Context(), setup.Options{
				ProjectRoot: p.ProjectRoot(),
				Manifest:    manifest,
				DryRun:      dryRun,
			})
			if err != nil {
				return fmt.Errorf("setup failed: %w", err)
			}

			if dryRun {
				fmt.Println("DRY RUN MODE - No changes were made")
				fmt.Println()
			}

			if result.Dirs != nil {
				printDirs(result.Dirs, dryRun)
			}
			if result.Submodules != nil {
				printSubmodules(result.Submodules, dryRun)
			}
			if result.Verify != nil {
				fmt.Println(styles.GetStyle("Header").Render("Project structure:"))
				printChecks(result.Verify)
				fmt.Println()
			}
			if result.Plugins != nil {
				printPlugins(result.Plugins, dryRun)
			}

			for _, warning := range result.Warnings {
				fmt.Println(styles.GetStyle("Warning").Render("Warning: " + warning))
			}
			if len(result.Warnings) > 0 {
				fmt.Println()
			}

			printNextSteps()
			return nil
		},
	}
}

func newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Create the project's working directories",
		Long: `Dirs creates the local working directories the project expects.
Directories that already exist are left alone.`,
		Example: `  absetup dirs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, manifest, err := loadManifest(cmd)
			if err != nil {
				return err
			}

			result, err := dirs.Create(dirs.Options{
				ProjectRoot: p.ProjectRoot(),
				Directories: manifest.Directories,
				DryRun:      isDryRun(cmd),
			})
			if err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}

			printDirs(result, isDryRun(cmd))
			return nil
		},
	}
}

func newSubmodulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submodules",
		Short: "Register and update the engine addon submodules",
		Long: `Submodules registers each configured addon repository as a git submodule
and runs 'git submodule update --init --recursive'. Destinations that
already exist are skipped.

See 'absetup help submodules' for the expected sibling checkout layout.`,
		Example: `  absetup submodules`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, manifest, err := loadManifest(cmd)
			if err != nil {
				return err
			}

			result, err := submodules.Sync(cmd.Context(), submodules.Options{
				ProjectRoot: p.ProjectRoot(),
				Submodules:  manifest.Submodules,
				DryRun:      isDryRun(cmd),
			})
			if err != nil {
				return fmt.Errorf("failed to configure submodules: %w", err)
			}

			printSubmodules(result, isDryRun(cmd))
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	var (
		formatStr string
		junitPath string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the expected project structure",
		Long: `Verify checks each required path and reports which exist. The exit code
is zero even when paths are missing; missing paths are hints for the
setup steps that create them, not errors.`,
		Example: `  # Human-readable check list
  absetup verify

  # Machine-readable output for scripts
  absetup verify --format yaml

  # Write a JUnit report for CI
  absetup verify --junit structure.xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(formatStr)
			if err != nil {
				return err
			}

			p, manifest, err := loadManifest(cmd)
			if err != nil {
				return err
			}

			result, err := verify.Verify(verify.Options{
				ProjectRoot:   p.ProjectRoot(),
				RequiredPaths: manifest.RequiredPaths,
			})
			if err != nil {
				return fmt.Errorf("failed to verify structure: %w", err)
			}

			if junitPath != "" {
				if err := report.WriteJUnit(filesystem.NewOS(), junitPath, result); err != nil {
					return fmt.Errorf("failed to write JUnit report: %w", err)
				}
			}

			switch ui.Resolve(format, os.Stdout) {
			case ui.FormatYAML:
				out, err := yaml.Marshal(result)
				if err != nil {
					return fmt.Errorf("failed to render result: %w", err)
				}
				fmt.Print(string(out))
			case ui.FormatText:
				for _, check := range result.Checks {
					glyph := style.GlyphCheck
					if !check.Exists {
						glyph = style.GlyphCross
					}
					fmt.Printf("  %s %s\n", glyph, check.Path)
				}
			default:
				printChecks(result)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "auto", "Output format: auto, term, text, or yaml")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Write a JUnit XML report to the given file")

	return cmd
}

func newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "Enable the editor plugins in project.godot",
		Long: `Plugins appends the [editor_plugins] block to the project descriptor so
the editor activates the addon plugins. A descriptor that already has the
block is left untouched.`,
		Example: `  absetup plugins`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, manifest, err := loadManifest(cmd)
			if err != nil {
				return err
			}

			result, err := plugins.Enable(plugins.Options{
				ProjectRoot: p.ProjectRoot(),
				ProjectFile: manifest.ProjectFile,
				Plugins:     manifest.Plugins.Enabled,
				DryRun:      isDryRun(cmd),
			})
			if err != nil {
				return fmt.Errorf("failed to configure plugins: %w", err)
			}

			printPlugins(result, isDryRun(cmd))
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Print the effective bootstrap manifest",
		Long: `GenConfig renders the manifest driving the setup steps: built-in defaults
merged with any setup.toml or .absetup.toml at the project root. With
--write it saves the result to setup.toml as a starting point for local
overrides.`,
		Example: `  # Inspect the effective manifest
  absetup genconfig

  # Save it for editing
  absetup genconfig --write`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd)
			if err != nil {
				return err
			}

			result, err := genconfig.Run(genconfig.Options{
				ProjectRoot: p.ProjectRoot(),
				Write:       write,
			})
			if err != nil {
				return fmt.Errorf("failed to generate manifest: %w", err)
			}

			if len(result.FilesWritten) > 0 {
				for _, path := range result.FilesWritten {
					fmt.Println(styles.GetStyle("Success").Render(fmt.Sprintf("  %s %s", style.GlyphCheck, path)))
				}
				return nil
			}

			fmt.Print(result.ConfigContent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the manifest to setup.toml at the project root")

	return cmd
}

func printDirs(result *types.DirsResult, dryRun bool) {
	verb := "Created"
	if dryRun {
		verb = "Would create"
	}
	for _, dir := range result.Created {
		fmt.Println(style.StepLine(style.StatusCreated, fmt.Sprintf("%s directory %s", verb, dir)))
	}
	for _, dir := range result.Existing {
		fmt.Println(style.StepLine(style.StatusPresent, fmt.Sprintf("Directory %s already exists", dir)))
	}
	fmt.Println()
}

func printSubmodules(result *types.SubmodulesResult, dryRun bool) {
	verb := "Registered"
	if dryRun {
		verb = "Would register"
	}
	for _, sm := range result.Added {
		fmt.Println(style.StepLine(style.StatusCreated, fmt.Sprintf("%s submodule %s -> %s", verb, sm.Source, sm.Path)))
	}
	for _, sm := range result.Present {
		fmt.Println(style.StepLine(style.StatusPresent, fmt.Sprintf("Submodule path %s already exists", sm.Path)))
	}
	if result.Updated {
		fmt.Println(style.StepLine(style.StatusCreated, "Submodules initialized and updated"))
	}
	fmt.Println()
}

func printChecks(result *types.VerifyResult) {
	for _, check := range result.Checks {
		fmt.Println(style.CheckLine(check.Path, check.Exists))
	}
}

func printPlugins(result *types.PluginsResult, dryRun bool) {
	switch {
	case result.Status == types.PluginsPresent:
		fmt.Println(style.StepLine(style.StatusPresent, fmt.Sprintf("%s already has an editor plugins section", result.ProjectFile)))
	case dryRun:
		fmt.Println(style.StepLine(style.StatusCreated, fmt.Sprintf("Would enable editor plugins in %s", result.ProjectFile)))
	default:
		fmt.Println(style.StepLine(style.StatusCreated, fmt.Sprintf("Editor plugins enabled in %s", result.ProjectFile)))
	}
	fmt.Println()
}

func printNextSteps() {
	fmt.Println(styles.GetStyle("Header").Render("Next steps:"))
	fmt.Println("  1. Open the project in Godot 4.6 or later")
	fmt.Println("  2. If the input addon needs its Python environment, run")
	fmt.Println("     install_deps.sh inside addons/aerobeat-input-mediapipe")
}
