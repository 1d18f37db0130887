package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/logic"
)

// NewRandomCommand creates a new cobra command for the random subcommand.
func NewRandomCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random [flags] [output]",
		Aliases: []string{"rnd"},
		Short:   "Write keystream bytes",
		Long: `Encrypt a stream of zero bytes and write the result, header included, to
the output file or standard output. Without --size the stream is endless and
stops when the reader goes away.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Files = args

			if err := validateKey(cfg); err != nil {
				return err
			}

			if cfg.Mode == "" {
				return config.ErrModeRequired
			}

			if cfg.Size < 0 {
				return errNegativeSize
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunRandom(cfg)
		},
	}

	cmd.Flags().StringP("mode", "m", "", "Mode of operation: ctr or ofb")
	cmd.Flags().Int64P("size", "n", 0, "Number of zero bytes to encrypt, 0 for endless")
	cmd.Flags().BoolP("stdout", "c", false, "Write to standard output")

	return cmd
}
