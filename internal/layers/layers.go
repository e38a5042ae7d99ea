// Package layers reports the state of the configured BitBake layers.
//
// A layer counts as registered when its absolute path appears in the build
// directory's conf/bblayers.conf. This mirrors what bitbake-layers add-layer
// writes and is enough for a health check; it does not parse BBLAYERS.
package layers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/hehos/jetson-hooks/internal/config"
)

// Layer is one configured layer and what was found on disk.
type Layer struct {
	Index        int    // 1-based registration order
	Rel          string // path relative to the checkout root
	Path         string // absolute path
	Exists       bool   // directory exists
	HasLayerConf bool   // conf/layer.conf exists
	Registered   bool   // listed in bblayers.conf
}

// Inspect returns the configured layers in registration order.
// A missing bblayers.conf is not an error; no layer is then registered.
// If bblayers.conf cannot be read, the layers are still returned with their
// disk state, no layer marked registered, along with the read error.
func Inspect(s config.Settings) ([]Layer, error) {
	bblayers, err := os.ReadFile(s.BBLayersPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		} else {
			err = fmt.Errorf("read bblayers.conf: %w", err)
		}
	}

	paths := s.LayerPaths()
	result := make([]Layer, len(paths))
	for i, path := range paths {
		result[i] = Layer{
			Index:        i + 1,
			Rel:          s.Layers[i],
			Path:         path,
			Exists:       isDir(path),
			HasLayerConf: isFile(filepath.Join(path, "conf", "layer.conf")),
			Registered:   IsRegistered(string(bblayers), path),
		}
	}
	return result, err
}

// IsRegistered reports whether bblayers lists path as a whole token.
func IsRegistered(bblayers, path string) bool {
	for _, field := range strings.FieldsFunc(bblayers, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '"' || r == '\\'
	}) {
		if filepath.Clean(field) == path {
			return true
		}
	}
	return false
}

// layerSource implements fuzzy.Source over relative layer paths.
type layerSource []Layer

func (s layerSource) String(i int) string { return s[i].Rel }
func (s layerSource) Len() int            { return len(s) }

// Filter returns the layers fuzzy-matching pattern, best match first.
// An empty pattern returns all layers unchanged.
func Filter(all []Layer, pattern string) []Layer {
	if pattern == "" {
		return all
	}
	matches := fuzzy.FindFrom(pattern, layerSource(all))
	result := make([]Layer, len(matches))
	for i, m := range matches {
		result[i] = all[m.Index]
	}
	return result
}

// Complete returns the relative layer paths matching toComplete, for shell completion.
func Complete(s config.Settings, toComplete string) []string {
	all := make([]Layer, len(s.Layers))
	for i, rel := range s.Layers {
		all[i] = Layer{Index: i + 1, Rel: rel}
	}
	var names []string
	for _, l := range Filter(all, toComplete) {
		names = append(names, l.Rel)
	}
	return names
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
