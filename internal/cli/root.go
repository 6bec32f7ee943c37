// Package cli implements the wikify command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wildbearsoftware/wikify/internal/build"
	"github.com/wildbearsoftware/wikify/internal/config"
	clierrors "github.com/wildbearsoftware/wikify/internal/errors"
	"github.com/wildbearsoftware/wikify/internal/notes"
	"github.com/wildbearsoftware/wikify/internal/output"
	"github.com/wildbearsoftware/wikify/internal/release"
)

// options holds the global flags. Only flags the user set override config.
type options struct {
	configPath string
	dir        string
	digest     string
	debug      bool
	noColor    bool
}

// NewRootCmd builds the wikify command with its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wikify <version>",
		Short: "Generate the wiki download page for a release",
		Long: `Generate the wiki download page for an fctx release.

wikify hashes every release file for the given version, prints a wiki table
linking to the download area, and appends the release notes for that version
taken from the NEWS file. The page is written to stdout.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (WIKIFY_*)
  3. Project config (.wikify.yml)
  4. User config (~/.config/wikify/config.yml)
  5. Built-in defaults`,
		Example: `  # Print the page for 1.2.3
  wikify 1.2.3

  # Release files live in dist/
  wikify -C dist 1.2.3 > page.txt

  # Use sha256 instead of md5
  wikify --digest sha256 1.2.3`,
		Version:       build.Info(),
		Args:          versionArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
			configureLogging(cmd.ErrOrStderr(), opts.debug || envDebug())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Project config file (default: .wikify.yml)")
	flags.StringVarP(&opts.dir, "dir", "C", "", "Directory holding the release files and NEWS")
	flags.StringVar(&opts.digest, "digest", "", "Checksum shown in the table: md5 | sha1 | sha256")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored diagnostics")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), clierrors.Usage,
			"Run 'wikify --help' to see valid options")
	})

	// A positional version must not collide with generated subcommands.
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// Execute runs the wikify command with os.Args and reports failures on stderr.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the wikify command with explicit arguments and streams.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		printError(stderr, err)
	}
	return err
}

// versionArg requires exactly one positional argument, the version.
func versionArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return clierrors.MissingVersion()
	case len(args) > 1:
		return clierrors.TooManyArguments(len(args))
	}
	return nil
}

func runGenerate(cmd *cobra.Command, opts *options, version string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	gen, err := cfg.Generator()
	if err != nil {
		return clierrors.ConfigError(err)
	}

	log.Printf("[cli] debug: generating page for %q from %s", version, cfg.Dir)
	sum, err := gen.Write(cmd.OutOrStdout(), version)
	if err != nil {
		return runError(err, cfg)
	}

	if output.IsTerminal(cmd.ErrOrStderr()) {
		output.PrintPageSummary(cmd.ErrOrStderr(), sum.Version, sum.Files, sum.NoteLines)
	}
	return nil
}

// loadConfig loads configuration with the flags the user set as overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Configuration, error) {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("dir") {
		overrides["dir"] = opts.dir
	}
	if flags.Changed("digest") {
		overrides["digest"] = opts.digest
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: opts.configPath,
		Overrides:         overrides,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, clierrors.ConfigError(err)
	}
	if cfg.Debug {
		configureLogging(cmd.ErrOrStderr(), true)
	}
	return cfg, nil
}

// runError converts a page generation failure into a CLIError.
func runError(err error, cfg *config.Configuration) error {
	var fileErr *release.FileError
	if errors.As(err, &fileErr) {
		return clierrors.ReleaseFileMissing(fileErr.Name, cfg.Dir, fileErr.Err)
	}
	var newsErr *notes.NewsError
	if errors.As(err, &newsErr) {
		return clierrors.NewsFileMissing(newsErr.Path, cfg.Dir, newsErr.Err)
	}
	return clierrors.OutputFailed(err)
}

// printError writes err to w, formatted when it is a CLIError.
func printError(w io.Writer, err error) {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(w, cliErr)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// configureLogging routes the standard logger to w when debug is on.
func configureLogging(w io.Writer, debug bool) {
	log.SetFlags(0)
	if debug {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}

func envDebug() bool {
	v, err := strconv.ParseBool(os.Getenv(config.EnvPrefix + "DEBUG"))
	return err == nil && v
}
