package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/logic"
)

// NewKeygenCommand creates a new cobra command for the keygen subcommand.
func NewKeygenCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "keygen [flags] [key-file]",
		Aliases: []string{"gen"},
		Short:   "Generate a new key file",
		Long: `Write 96 fresh random bytes to the key file, given with --key or as the
argument. Existing files are kept unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Key = args[0]
			}

			return validateKey(cfg)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunKeygen(cfg)
		},
	}
}
