package pathmatch_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/kcrypt/pkg/pathmatch"
)

// Case is a single golden case.
type Case struct {
	Pattern     string `yaml:"pattern"`
	Path        string `yaml:"path"`
	Match       bool   `yaml:"match"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func golden(t *testing.T) []Case {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no testdata/*.yml files found")

	var cases []Case

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // fixed testdata
		require.NoError(t, err)

		var groups []Group
		require.NoError(t, yaml.Unmarshal(data, &groups), f)

		for _, g := range groups {
			for i, c := range g.Cases {
				if c.Description == "" {
					c.Description = fmt.Sprintf("case %d", i)
				}

				c.Description = strings.TrimSuffix(filepath.Base(f), ".yml") + "/" + g.Name + "/" + c.Description
				cases = append(cases, c)
			}
		}
	}

	return cases
}

func TestMatch(t *testing.T) {
	t.Parallel()

	for _, tc := range golden(t) {
		t.Run(tc.Description, func(t *testing.T) {
			t.Parallel()

			got, err := pathmatch.Match(tc.Pattern, tc.Path)
			require.NoError(t, err)
			assert.Equal(t, tc.Match, got, "Match(%q, %q)", tc.Pattern, tc.Path)
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	set, err := pathmatch.NewSet([]string{"*.kc3", "keys/*"})
	require.NoError(t, err)

	assert.True(t, set.Any("a/b.kc3"))
	assert.True(t, set.Any("keys/k.bin"))
	assert.False(t, set.Any("notes.txt"))

	var empty pathmatch.Set
	assert.False(t, empty.Any("anything"))
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	_, err := pathmatch.Compile("a[bc")
	require.ErrorIs(t, err, pathmatch.ErrUnclosedClass)

	_, err = pathmatch.Compile("a[]")
	require.ErrorIs(t, err, pathmatch.ErrUnclosedClass)

	_, err = pathmatch.Compile(`abc\`)
	require.ErrorIs(t, err, pathmatch.ErrTrailingEscape)

	_, err = pathmatch.NewSet([]string{"ok", "[bad"})
	require.Error(t, err)
}

// TestFindParity checks every golden case against find(1) on a materialized tree.
func TestFindParity(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("find"); err != nil {
		t.Skip("find not available")
	}

	for _, tc := range golden(t) {
		t.Run(tc.Description, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			full := filepath.Join(root, tc.Path)

			require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
			require.NoError(t, os.WriteFile(full, nil, 0o600))

			//nolint:gosec // fixed testdata
			out, err := exec.CommandContext(t.Context(), "find", root, "-type", "f",
				"-path", root+"/"+tc.Pattern).Output()
			require.NoError(t, err)

			assert.Equal(t, tc.Match, strings.TrimSpace(string(out)) != "",
				"find -path %q on %q", tc.Pattern, tc.Path)
		})
	}
}
