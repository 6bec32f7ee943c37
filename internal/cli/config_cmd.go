package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wildbearsoftware/wikify/internal/config"
	clierrors "github.com/wildbearsoftware/wikify/internal/errors"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create wikify configuration",
		Long: `Inspect or create wikify configuration.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (WIKIFY_*, nested keys use __: WIKIFY_NOTES__END_MARKER)
  3. Project config (.wikify.yml)
  4. User config (~/.config/wikify/config.yml)
  5. Built-in defaults`,
		Example: `  # Show the effective configuration
  wikify config show

  # Write a commented .wikify.yml
  wikify config init

  # Write the template somewhere else
  wikify --config conf/wikify.yml config init`,
		Args: cobra.NoArgs,
	}

	cmd.AddCommand(newConfigShowCmd(opts), newConfigInitCmd(opts))
	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return clierrors.OutputFailed(err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented project config (.wikify.yml or the --config path)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.ProjectConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return clierrors.NewArgumentErrorWithUsage(
					fmt.Sprintf("%s already exists", path),
					"wikify config init --force",
					"Pass --force to overwrite it",
				)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return clierrors.OutputFailed(err)
			}
			if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
				return clierrors.OutputFailed(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
