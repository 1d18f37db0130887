package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Long: `Decrypt files and directories. The mode of operation is read from each
file's header. Directories only contribute files ending in the suffix unless
include patterns are given.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			// The header decides the mode; an inherited KCRYPT_MODE is ignored.
			if !cmd.Flags().Changed("mode") {
				cfg.Mode = ""
			}

			return preRun(cfg, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	// Accepted only to reject it with a clear message.
	cmd.Flags().StringP("mode", "m", "", "Not used: the mode is detected from the input")
	_ = cmd.Flags().MarkHidden("mode")

	addFileFlags(cmd)

	return cmd
}
