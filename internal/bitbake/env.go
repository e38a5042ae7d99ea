package bitbake

import (
	"path/filepath"
	"strings"

	"github.com/hehos/jetson-hooks/internal/config"
)

// Quote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func Quote(s string) string {
	// 'it'\''s' closes the quote, adds an escaped quote, and reopens.
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// Env describes a build environment that commands are run inside.
type Env struct {
	Shell      string // shell supporting the source builtin
	TopDir     string // checkout root, used as working directory
	InitScript string // absolute path to oe-init-build-env
	BuildDir   string // absolute build directory
}

// EnvFromSettings derives the build environment from hook settings.
func EnvFromSettings(s config.Settings) Env {
	return Env{
		Shell:      s.Shell,
		TopDir:     s.TopDir,
		InitScript: s.InitScriptPath(),
		BuildDir:   s.BuildDirPath(),
	}
}

// Invocation is one external shell run.
type Invocation struct {
	Name   string // short label for logs and errors
	Shell  string
	Script string // passed to Shell via -c
	Dir    string // working directory
}

// source is the prefix every invocation starts with.
func (e Env) source() string {
	return "source " + Quote(e.InitScript) + " " + Quote(e.BuildDir)
}

func (e Env) invocation(name, script string) Invocation {
	return Invocation{Name: name, Shell: e.Shell, Script: script, Dir: e.TopDir}
}

// Init sources the init script, which creates the build directory and its conf/ files.
func (e Env) Init() Invocation {
	return e.invocation("init", e.source())
}

// AddLayer registers layerPath via bitbake-layers in a freshly sourced environment.
func (e Env) AddLayer(layerPath string) Invocation {
	return e.invocation(
		"add-layer "+filepath.Base(layerPath),
		e.source()+" && bitbake-layers add-layer "+Quote(layerPath),
	)
}

// Fetch downloads the sources for image and all its dependencies without building.
func (e Env) Fetch(image string) Invocation {
	return e.invocation(
		"fetch "+image,
		e.source()+" && bitbake "+Quote(image)+" --runall=fetch",
	)
}
