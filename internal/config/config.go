// Package config holds the runtime configuration of kcrypt.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Stdio names standard input or output in place of a file path.
const Stdio = "-"

// Config is populated from flags and KCRYPT_* environment variables.
type Config struct {
	// Key is the path of the 96-byte key file.
	Key string `validate:"required"`
	// Mode is the mode of operation for encryption and keystream output.
	Mode string `validate:"omitempty,oneof=ctr ofb"`

	Parallel int  `validate:"min=1"`
	Quiet    bool
	Verbose  bool
	Force    bool
	Stdout   bool
	Progress bool
	Delete   bool `validate:"excluded_with=Stdout"`
	Dry      bool
	Stats    bool

	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Suffix is appended on encryption and stripped on decryption.
	Suffix string `validate:"required,suffix"`

	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from" validate:"omitempty,file"`
	ExcludeFrom string `mapstructure:"exclude-from" validate:"omitempty,file"`

	// Size limits the keystream output to this many payload bytes; 0 is endless.
	Size int64 `validate:"min=0"`

	// Set by the command being run.
	Decrypt bool `mapstructure:"-"`

	// Positional arguments.
	Files []string `mapstructure:"-"`
}

var (
	// ErrModeRequired is returned when an operation that writes a stream has no mode.
	ErrModeRequired = errors.New("no mode of operation specified")
	// ErrModeNotAllowed is returned when a mode is given for decryption.
	ErrModeNotAllowed = errors.New("mode of operation need not be specified for decryption")
	// ErrStdoutMultiple is returned when several inputs would be written to standard output.
	ErrStdoutMultiple = errors.New("standard output can take a single input only")
)

// Validate checks the configuration against its struct tags.
// Mode names are case-insensitive and stored in lower case.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(c.Mode)

	validate := validator.New()

	if err := registerSuffix(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// ValidateStreams adds the checks shared by encrypt and decrypt.
func (c *Config) ValidateStreams() error {
	if err := c.Validate(); err != nil {
		return err
	}

	switch {
	case c.Decrypt && c.Mode != "":
		return ErrModeNotAllowed
	case !c.Decrypt && c.Mode == "":
		return ErrModeRequired
	case c.ToStdout() && len(c.Files) > 1:
		return ErrStdoutMultiple
	}

	return nil
}

// ToStdout reports whether results go to standard output.
func (c *Config) ToStdout() bool {
	return c.Stdout || (len(c.Files) == 1 && c.Files[0] == Stdio)
}
