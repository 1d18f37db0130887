package logic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/idelchi/kcrypt/internal/cipherio"
	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/encryption"
	"github.com/idelchi/kcrypt/internal/progress"
)

// RunRandom writes the keystream of the configured mode: the encoding of
// cfg.Size zero bytes, or of an endless zero stream when the size is 0.
func RunRandom(cfg *config.Config) (err error) {
	mode, err := encryption.ParseMode(cfg.Mode)
	if err != nil {
		return err //nolint:wrapcheck // names the offending mode
	}

	key, err := loadKey(cfg.Key)
	if err != nil {
		return err
	}
	defer key.Wipe()

	var out *os.File

	if len(cfg.Files) == 0 || cfg.ToStdout() {
		if isTerminal(os.Stdout) {
			return ErrTerminal
		}

		out = os.Stdout
	} else {
		out, err = create(cfg.Files[0], cfg.Force)
		if err != nil {
			return err
		}

		defer func() {
			if cerr := out.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
	}

	params := encryption.Params{
		Key:    key,
		Input:  cipherio.NewZero(cfg.Size),
		Output: cipherio.NewFile(out),
		Total:  cfg.Size,
	}
	defer params.Key.Wipe()

	if cfg.Progress {
		params.Progress = progress.New(os.Stderr, progress.DefaultInterval).Track("keystream")
	}

	err = newCodec().Encode(mode, &params)

	// A closed pipe is how an endless stream normally ends.
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("writing keystream: %w", err)
	}

	return nil
}

func create(path string, force bool) (*os.File, error) {
	const ownerReadWrite = 0o600

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(filepath.Clean(path), flags, ownerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	return f, nil
}
