// Package commands provides the command-line interface for the kcrypt tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key generation
//   - keystream output
//   - pattern checks
//
// Flags are bound through viper, so every flag can also be set as a
// KCRYPT_* environment variable (dashes become underscores).
package commands
