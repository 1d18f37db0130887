// Package logic ties configuration, key material and the stream codec together
// for each command.
package logic

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/encryption"
	"github.com/idelchi/kcrypt/internal/filter"
	"github.com/idelchi/kcrypt/internal/gf"
	"github.com/idelchi/kcrypt/internal/kcrypt"
	"github.com/idelchi/kcrypt/internal/keyfile"
	"github.com/idelchi/kcrypt/internal/secrand"
)

// ErrTerminal is returned instead of writing ciphertext to a terminal.
var ErrTerminal = errors.New("refusing to write binary data to a terminal")

// newCodec builds the codec over the default field with the system random source.
func newCodec() *encryption.Codec {
	return encryption.NewCodec(kcrypt.New(gf.New(gf.DefaultPoly)), secrand.Tink{})
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in an int
}

func loadKey(path string) (kcrypt.BlockKey, error) {
	key, err := keyfile.Load(path)
	if err != nil {
		return key, fmt.Errorf("loading key: %w", err)
	}

	slog.Debug("loaded key", "path", path, "fingerprint", keyfile.Fingerprint(&key))

	return key, nil
}

// Run encrypts or decrypts the configured files.
func Run(cfg *config.Config) error {
	scanned, excluded, start, done, err := preamble(cfg)
	if done || err != nil {
		return err
	}

	if cfg.ToStdout() {
		if len(cfg.Files) > 1 {
			return config.ErrStdoutMultiple
		}

		if !cfg.Decrypt && isTerminal(os.Stdout) {
			return ErrTerminal
		}
	}

	key, err := loadKey(cfg.Key)
	if err != nil {
		return err
	}
	defer key.Wipe()

	proc, err := encryption.NewProcessor(cfg, newCodec(), &key)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}
	defer proc.Wipe()

	stats, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(scanned, excluded, stats, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config) (int, int, time.Time, bool, error) {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return 0, 0, start, false, fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		dryRun(cfg, scanned, excluded, start)

		return scanned, excluded, start, true, nil
	}

	return scanned, excluded, start, false, nil
}

// resolveFiles expands directories and applies include/exclude filtering.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	patterns, err := filter.Collect(cfg.Include, cfg.Exclude, cfg.IncludeFrom, cfg.ExcludeFrom)
	if err != nil {
		return 0, err //nolint:wrapcheck // already carries the pattern file name
	}

	// Only encrypted files are picked up from directories unless told otherwise.
	if cfg.Decrypt && !patterns.Restrict {
		patterns.Include = append(patterns.Include, "*"+cfg.Suffix)
		patterns.Restrict = true
	}

	files, scanned, err := filter.Resolve(cfg.Files, patterns)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// dryRun previews what would be processed without touching any file.
func dryRun(cfg *config.Config, scanned, excluded int, start time.Time) {
	stats := encryption.Stats{}

	for _, file := range cfg.Files {
		out, err := encryption.OutputPath(file, cfg.Suffix, cfg.Decrypt)
		if cfg.ToStdout() {
			out, err = config.Stdio, nil
		}

		if err != nil {
			stats.Errored++

			fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", file, err)

			continue
		}

		stats.Processed++

		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "Would process %q -> %q\n", file, out)
		}

		if info, err := os.Stat(file); err == nil {
			if cfg.Decrypt {
				stats.TotalSize += info.Size()
			} else {
				stats.TotalSize += encryption.EncodedSize(info.Size())
			}
		}
	}

	if cfg.Stats {
		printStats(scanned, excluded, stats, time.Since(start))
	}
}

func printStats(scanned, excluded int, stats encryption.Stats, duration time.Duration) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)

	bold.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", stats.Processed)

	if stats.Errored > 0 {
		red.Fprintf(os.Stderr, "  Errors:    %d\n", stats.Errored)
	} else {
		fmt.Fprintf(os.Stderr, "  Errors:    %d\n", stats.Errored)
	}

	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, stats.TotalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
