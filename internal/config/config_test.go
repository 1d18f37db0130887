package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/kcrypt/internal/config"
)

func valid() config.Config {
	return config.Config{
		Key:      "key.bin",
		Mode:     "ctr",
		Parallel: 1,
		Suffix:   ".kc3",
		Files:    []string{"a.txt"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", modify: func(*config.Config) {}},
		{name: "missing key", modify: func(c *config.Config) { c.Key = "" }, wantErr: true},
		{name: "bad mode", modify: func(c *config.Config) { c.Mode = "cbc" }, wantErr: true},
		{name: "upper case mode", modify: func(c *config.Config) { c.Mode = "OFB" }},
		{name: "mixed case mode", modify: func(c *config.Config) { c.Mode = "Ctr" }},
		{name: "no parallelism", modify: func(c *config.Config) { c.Parallel = 0 }, wantErr: true},
		{name: "suffix without dot", modify: func(c *config.Config) { c.Suffix = "kc3" }, wantErr: true},
		{name: "suffix with separator", modify: func(c *config.Config) { c.Suffix = ".a/b" }, wantErr: true},
		{name: "bare dot", modify: func(c *config.Config) { c.Suffix = "." }, wantErr: true},
		{name: "negative size", modify: func(c *config.Config) { c.Size = -1 }, wantErr: true},
		{name: "delete with stdout", modify: func(c *config.Config) { c.Delete, c.Stdout = true, true }, wantErr: true},
		{name: "missing pattern file", modify: func(c *config.Config) { c.IncludeFrom = "does/not/exist" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateLowersMode(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Mode = "oFb"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ofb", cfg.Mode)
}

func TestValidateStreams(t *testing.T) {
	t.Parallel()

	cfg := valid()
	require.NoError(t, cfg.ValidateStreams())

	cfg.Mode = ""
	require.ErrorIs(t, cfg.ValidateStreams(), config.ErrModeRequired)

	cfg.Decrypt = true
	require.NoError(t, cfg.ValidateStreams())

	cfg.Mode = "ofb"
	require.ErrorIs(t, cfg.ValidateStreams(), config.ErrModeNotAllowed)

	cfg = valid()
	cfg.Stdout = true
	cfg.Files = []string{"a", "b"}
	require.ErrorIs(t, cfg.ValidateStreams(), config.ErrStdoutMultiple)
}

func TestToStdout(t *testing.T) {
	t.Parallel()

	cfg := valid()
	assert.False(t, cfg.ToStdout())

	cfg.Files = []string{config.Stdio}
	assert.True(t, cfg.ToStdout())

	cfg.Files = []string{"a"}
	cfg.Stdout = true
	assert.True(t, cfg.ToStdout())
}
