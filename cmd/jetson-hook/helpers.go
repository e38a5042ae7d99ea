package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hehos/jetson-hooks/internal/config"
)

// loadSettings loads the settings for the checkout root in ctx.
func loadSettings(ctx context.Context) (config.Settings, error) {
	return config.Load(topDirFromContext(ctx))
}

// parseArgs parses "key=value" strings into a map.
// Returns an error if any entry doesn't contain "=" or has an empty key.
func parseArgs(args []string) (map[string]string, error) {
	result := make(map[string]string, len(args))
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q: expected KEY=VALUE", a)
		}
		if key == "" {
			return nil, fmt.Errorf("invalid argument %q: key cannot be empty", a)
		}
		result[key] = value
	}
	return result, nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
