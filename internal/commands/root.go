package commands

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/kcrypt/internal/config"
)

// EnvPrefix is the prefix of environment variables that override flags.
const EnvPrefix = "KCRYPT"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling; level is raised
// to debug with --verbose.
func NewRootCommand(cfg *config.Config, version string, level *slog.LevelVar) *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	root := &cobra.Command{
		Use:   "kcrypt [flags] command [flags]",
		Short: "File encryption with the KC3 block cipher",
		Long: `Encrypts and decrypts files with KC3, a 512-bit Feistel cipher over GF(256),
in CTR or OFB mode. Provides commands for key generation, keystream output,
encryption and decryption.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := vip.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			if err := vip.Unmarshal(cfg); err != nil {
				return fmt.Errorf("parsing config: %w", err)
			}

			if cfg.Verbose {
				level.Set(slog.LevelDebug)
			}

			slog.Debug("configuration", "config", fmt.Sprintf("%+v", *cfg))

			return nil
		},
	}

	root.PersistentFlags().StringP("key", "k", "", "Path to the 96-byte key file")
	root.PersistentFlags().BoolP("force", "f", false, "Overwrite existing output files")
	root.PersistentFlags().BoolP("progress", "p", false, "Show progress on standard error")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewKeygenCommand(cfg),
		NewRandomCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}

// addFileFlags registers the flags shared by commands that process files.
func addFileFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("stdout", "c", false, "Write the result to standard output (single input only)")
	flags.Bool("delete", false, "Delete the original file after successful processing")
	flags.Bool("dry", false, "Show what would be processed without doing it")
	flags.Bool("stats", false, "Print a summary when done")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")
	flags.String("suffix", ".kc3", "Suffix appended on encryption and stripped on decryption")

	addPatternFlags(cmd)
}

// addPatternFlags registers include/exclude filtering for directory arguments.
func addPatternFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringSliceP("include", "i", nil, "Glob of files to include when walking directories (find -path syntax)")
	flags.StringSliceP("exclude", "e", nil, "Glob of files to exclude when walking directories (find -path syntax)")
	flags.String("include-from", "", "JSONC file with an array of include globs")
	flags.String("exclude-from", "", "JSONC file with an array of exclude globs")
}
