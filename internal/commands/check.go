package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [paths...]",
		Short: "Validate that include/exclude patterns match files",
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Files = args
			if len(args) == 0 {
				cfg.Files = []string{"."}
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg)
		},
	}

	addPatternFlags(cmd)

	return cmd
}
