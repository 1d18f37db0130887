package filter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSON array of globs. Comments and trailing commas are allowed.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}
