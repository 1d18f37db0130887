// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrOutputExists is returned when the output path is taken and overwriting is off.
var ErrOutputExists = errors.New("output file exists")

const ownerReadWrite = 0o600

// TempContext holds state for an atomic file write operation.
// The output appears under its final name only after Commit.
type TempContext struct {
	SrcInfo os.FileInfo
	IsExec  bool
	TmpFile *os.File
	TmpName string

	outPath string
}

// NewTempContext stats the source file and creates a temp file next to outPath.
// Unless force is set, an existing outPath is an error.
// Caller must defer CleanupOnError.
func NewTempContext(filename, outPath string, force bool) (*TempContext, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", filename)
	}

	if !force {
		if _, err := os.Lstat(outPath); err == nil {
			return nil, fmt.Errorf("%w: %q (use --force to overwrite)", ErrOutputExists, outPath)
		}
	}

	const executableBits = 0o111

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".kc3-tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		SrcInfo: info,
		IsExec:  info.Mode()&executableBits != 0,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
		outPath: outPath,
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:gosec // best-effort cleanup
	}
}

// Commit closes the temp file, carries the source's executable bit over and
// renames it onto the output path. It returns the size of the output.
func (tc *TempContext) Commit(preserveTimestamps bool) (int64, error) {
	perm := os.FileMode(ownerReadWrite)

	if tc.IsExec {
		perm |= 0o111
	}

	if err := tc.TmpFile.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, tc.outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return FinalizeOutput(tc.outPath, preserveTimestamps, tc.SrcInfo.ModTime())
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
