package logic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/idelchi/kcrypt/internal/config"
	"github.com/idelchi/kcrypt/internal/filter"
	"github.com/idelchi/kcrypt/pkg/pathmatch"
)

// ErrUnusedPatterns is returned by RunCheck when some pattern selects nothing.
var ErrUnusedPatterns = errors.New("patterns matched no files")

// RunCheck reports how many files each include/exclude pattern selects and
// fails if any of them selects none.
func RunCheck(cfg *config.Config) error {
	patterns, err := filter.Collect(cfg.Include, cfg.Exclude, cfg.IncludeFrom, cfg.ExcludeFrom)
	if err != nil {
		return err //nolint:wrapcheck // already carries the pattern file name
	}

	if len(patterns.Include) == 0 && len(patterns.Exclude) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	candidates, _, err := filter.Resolve(cfg.Files, filter.Patterns{})
	if err != nil {
		return fmt.Errorf("collecting files: %w", err)
	}

	for i, c := range candidates {
		candidates[i] = filepath.ToSlash(c)
	}

	failures := checkPatterns("include", patterns.Include, candidates, cfg.Quiet)
	failures += checkPatterns("exclude", patterns.Exclude, candidates, cfg.Quiet)

	if failures > 0 {
		return fmt.Errorf("%w: %d", ErrUnusedPatterns, failures)
	}

	return nil
}

// checkPatterns counts matches per pattern and returns how many matched nothing.
func checkPatterns(kind string, patterns, candidates []string, quiet bool) int {
	red := color.New(color.FgRed)

	var failures int

	for _, source := range patterns {
		pattern, err := pathmatch.Compile(source)
		if err != nil {
			red.Fprintf(os.Stderr, "%s: %v\n", kind, err)

			failures++

			continue
		}

		var count int

		for _, path := range candidates {
			if pattern.Match(path) {
				count++
			}
		}

		switch {
		case count == 0:
			red.Fprintf(os.Stderr, "%s: %s: no files\n", kind, source)

			failures++
		case !quiet:
			fmt.Fprintf(os.Stderr, "%s: %s: %d files\n", kind, source, count)
		}
	}

	return failures
}
