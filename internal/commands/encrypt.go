package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Long: `Encrypt files and directories. Each output is written next to its input
with the suffix appended. Use "-" to read standard input.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	cmd.Flags().StringP("mode", "m", "", "Mode of operation: ctr or ofb")
	addFileFlags(cmd)

	return cmd
}
