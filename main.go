package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Input
	rootDir string

	// Behavior
	assumeYes bool
	dryRun    bool
	noIgnore  bool

	// Report delivery
	reportFile string
	copyReport bool
	noColor    bool
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "webscrub",
	Short: "Strip comments from web sources and stamp each file with its path.",
	Long: `webscrub recursively scans a directory tree and rewrites HTML, CSS, and
JS files in place: comments matching per-kind patterns are removed and a
header comment holding the file's root-relative path becomes line 1.

Comment removal is pattern-based, not a parser; delimiters inside string
literals are stripped too. Review changes, and prefer running inside a git
work tree.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory not found: %s", rootDir)
	}
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", rootDir, err)
	}

	rep := newReporter(os.Stdout, os.Stderr)

	warnRepoState(root, rep)

	// The prompt only appears on an interactive stdin; piped and CI runs
	// proceed as if confirmed.
	if !assumeYes && !dryRun && isatty.IsTerminal(os.Stdin.Fd()) {
		ok, err := confirmProceed(os.Stdin, os.Stderr, root)
		if err != nil {
			return err
		}
		if !ok {
			rep.Info("Aborted; no files were modified.")
			return nil
		}
	}

	walkTree(root, rep)

	// Per-file errors never change the exit status; only a bad root does.
	if err := rep.Deliver(reportFile, copyReport); err != nil {
		rep.Error("%v", err)
	}
	return nil
}

func warnRepoState(root string, rep *reporter) {
	tracked, dirty, err := repoState(root)
	switch {
	case err != nil:
		rep.Warn("Could not inspect version control state: %v", err)
	case !tracked:
		rep.Warn("%s is not inside a git work tree; there is no undo. Consider a backup first.", root)
	case dirty:
		rep.Warn("Git work tree has uncommitted changes; commit or stash before rewriting files.")
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&rootDir, "directory", "d", ".", "Root directory to start searching (default: current directory)")
	viper.BindPFlag("directory", rootCmd.Flags().Lookup("directory"))
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt (use with caution!)")
	viper.BindPFlag("yes", rootCmd.Flags().Lookup("yes"))
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing anything")
	viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))
	rootCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Also save the run report to the given file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyReport, "clipboard", "c", false, "Also copy the run report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	viper.BindPFlag("no_color", rootCmd.Flags().Lookup("no-color"))

	viper.SetDefault("directory", ".")
	viper.SetDefault("dry_run", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("no_color", false)
}

// initConfig wires WEBSCRUB_* environment variables into the flag layer.
// No config file is read: this tool is flags-and-environment only.
func initConfig() {
	viper.SetEnvPrefix("WEBSCRUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Flags win over the environment; only unset flags pick up env values.
	if !rootCmd.Flags().Changed("directory") {
		if v := viper.GetString("directory"); v != "" {
			rootDir = v
		}
	}
	if !rootCmd.Flags().Changed("dry-run") && viper.GetBool("dry_run") {
		dryRun = true
	}
	if !rootCmd.Flags().Changed("no-ignore") && viper.GetBool("no_ignore") {
		noIgnore = true
	}
	if !rootCmd.Flags().Changed("no-color") && viper.GetBool("no_color") {
		noColor = true
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
