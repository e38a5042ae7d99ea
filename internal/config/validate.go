package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalid marks errors caused by bad settings rather than by the build tools.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that s describes a usable checkout layout.
// Returned errors wrap ErrInvalid.
func Validate(s Settings) error {
	if err := validate(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func validate(s Settings) error {
	if !filepath.IsAbs(s.TopDir) {
		return fmt.Errorf("top dir must be absolute, got: %q", s.TopDir)
	}
	if err := validateRelPath(s.BuildDir, "build_dir"); err != nil {
		return err
	}
	if err := validateRelPath(s.InitScript, "init_script"); err != nil {
		return err
	}
	if s.Shell == "" {
		return fmt.Errorf("shell must not be empty")
	}
	if strings.TrimSpace(s.Machine) == "" {
		return fmt.Errorf("machine must not be empty")
	}
	if strings.TrimSpace(s.Distro) == "" {
		return fmt.Errorf("distro must not be empty")
	}
	for i, line := range s.ExtraLines {
		if strings.ContainsAny(line, "\r\n") {
			return fmt.Errorf("extra_lines[%d] must be a single line", i)
		}
	}
	if len(s.Layers) == 0 {
		return fmt.Errorf("layers must not be empty")
	}

	seen := make(map[string]int, len(s.Layers))
	for i, layer := range s.Layers {
		field := fmt.Sprintf("layers[%d]", i)
		if err := validateRelPath(layer, field); err != nil {
			return err
		}
		clean := filepath.Clean(layer)
		if j, dup := seen[clean]; dup {
			return fmt.Errorf("%s %q duplicates layers[%d]", field, layer, j)
		}
		seen[clean] = i
	}

	if strings.ContainsAny(s.FetchImage, " \t\r\n") {
		return fmt.Errorf("invalid fetch_image %q: must be a single recipe name", s.FetchImage)
	}
	return nil
}

// validateRelPath requires a non-empty path that stays inside the checkout.
func validateRelPath(path, field string) error {
	if path == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("%s must be relative to the checkout root, got: %q", field, path)
	}
	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s must not leave the checkout root, got: %q", field, path)
	}
	return nil
}
