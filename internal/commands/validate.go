package commands

import (
	"errors"
	"fmt"

	"github.com/idelchi/kcrypt/internal/config"
)

var (
	errNoKey   = errors.New("no key file specified (use --key or KCRYPT_KEY)")
	errNoFiles = errors.New("no input files (use \"-\" for standard input)")

	errNegativeSize = errors.New("size must not be negative")
)

// preRun stores positional args in cfg.Files and validates the configuration.
func preRun(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return errNoFiles
	}

	cfg.Files = args

	if cfg.Key == "" {
		return errNoKey
	}

	if err := cfg.ValidateStreams(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func validateKey(cfg *config.Config) error {
	if cfg.Key == "" {
		return errNoKey
	}

	return nil
}
