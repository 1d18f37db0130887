package logic

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/keyfile"
	"github.com/idelchi/kcrypt/internal/secrand"
)

// RunKeygen writes a fresh key to the configured key path.
func RunKeygen(cfg *config.Config) error {
	key, err := keyfile.Generate(secrand.Tink{})
	if err != nil {
		return err //nolint:wrapcheck // keyfile errors are descriptive
	}
	defer key.Wipe()

	if err := keyfile.Save(cfg.Key, &key, cfg.Force); err != nil {
		return err //nolint:wrapcheck // keyfile errors are descriptive
	}

	if !cfg.Quiet {
		green := color.New(color.FgGreen, color.Bold)

		green.Fprintf(os.Stderr, "Wrote key %q\n", cfg.Key)
		fmt.Fprintf(os.Stderr, "Fingerprint: %s\n", keyfile.Fingerprint(&key))
	}

	return nil
}
