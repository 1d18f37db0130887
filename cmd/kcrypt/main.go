// Command kcrypt encrypts and decrypts files with the KC3 cipher.
package main

import (
	"log/slog"
	"os"

	"github.com/idelchi/kcrypt/internal/commands"
	"github.com/idelchi/kcrypt/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown"

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version, level).Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
