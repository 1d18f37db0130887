// Package filter expands path arguments into the list of files to process.
//
// Explicit files are taken as given. Directories are walked recursively and
// their files kept or dropped by include/exclude globs with find -path
// semantics. Excludes always win.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/kcrypt/pkg/pathmatch"
)

// Stdio is passed through unchanged; it names standard input.
const Stdio = "-"

// tempPrefix marks in-flight outputs, which are never inputs.
const tempPrefix = ".kc3-tmp-"

// ErrNoFiles is returned when nothing is left to process.
var ErrNoFiles = errors.New("no files matched")

// Patterns holds the globs applied to files found inside directories.
type Patterns struct {
	Include []string
	Exclude []string
	// Restrict is set when an include list was requested, even if it is empty.
	// Without it every walked file is included.
	Restrict bool
}

// Collect merges globs given directly with those from pattern files.
// Leading "./" is stripped so that patterns line up with cleaned paths.
func Collect(include, exclude []string, includeFrom, excludeFrom string) (Patterns, error) {
	patterns := Patterns{
		Include:  append([]string{}, include...),
		Exclude:  append([]string{}, exclude...),
		Restrict: len(include) > 0 || includeFrom != "",
	}

	for _, from := range []struct {
		path string
		dst  *[]string
	}{
		{includeFrom, &patterns.Include},
		{excludeFrom, &patterns.Exclude},
	} {
		if from.path == "" {
			continue
		}

		loaded, err := LoadPatterns(from.path)
		if err != nil {
			return Patterns{}, err
		}

		*from.dst = append(*from.dst, loaded...)
	}

	for _, list := range [][]string{patterns.Include, patterns.Exclude} {
		for i, p := range list {
			list[i] = strings.TrimPrefix(p, "./")
		}
	}

	return patterns, nil
}

type matcher struct {
	include  pathmatch.Set
	exclude  pathmatch.Set
	restrict bool
}

func (p Patterns) compile() (*matcher, error) {
	include, err := pathmatch.NewSet(p.Include)
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exclude, err := pathmatch.NewSet(p.Exclude)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &matcher{include: include, exclude: exclude, restrict: p.Restrict}, nil
}

func (m *matcher) keep(path string) bool {
	return (!m.restrict || m.include.Any(path)) && !m.exclude.Any(path)
}

// Resolve expands args into files. It returns the de-duplicated file list and
// the number of candidates seen before filtering.
func Resolve(args []string, patterns Patterns) (files []string, scanned int, err error) {
	m, err := patterns.compile()
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		if arg == Stdio {
			scanned++

			add(arg)

			continue
		}

		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		total, err := walk(arg, m, add)
		if err != nil {
			return nil, 0, err
		}

		scanned += total
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}

// walk visits the regular files below root and hands those that pass m to add.
func walk(root string, m *matcher, add func(string)) (total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), tempPrefix) {
			return nil
		}

		total++

		if m.keep(filepath.ToSlash(path)) {
			add(path)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return total, nil
}
