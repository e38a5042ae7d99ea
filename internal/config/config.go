package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/hehos/jetson-hooks/internal/localconf"
)

// FileName is the optional per-checkout override file.
const FileName = ".jetson-hooks.toml"

// Fixed defaults for the Jetson Nano build.
const (
	DefaultBuildDir   = "build-jetson"
	DefaultInitScript = "sources/poky/oe-init-build-env"
	DefaultShell      = "/bin/bash"
	DefaultMachine    = "jetson-nano-devkit"
	DefaultDistro     = "hehos"
)

// Markers framing the block appended to local.conf.
const (
	StartMarker = "# --- Custom settings added by jetson-hooks ---"
	EndMarker   = "# --- End of custom settings ---"
)

// DefaultExtraLines are appended to local.conf after MACHINE and DISTRO.
func DefaultExtraLines() []string {
	return []string{`PACKAGECONFIG:append:pn-weston = " rdp"`}
}

// DefaultLayers returns the layers registered with bitbake, in order.
func DefaultLayers() []string {
	return []string{
		"sources/meta-openembedded/meta-oe",
		"sources/meta-openembedded/meta-python",
		"sources/meta-openembedded/meta-networking",
		"sources/meta-openembedded/meta-multimedia",
		"sources/meta-tegra",
		"sources/meta-coda",
	}
}

// Settings is everything the hook needs to know about a checkout.
type Settings struct {
	TopDir     string   `toml:"-"`           // absolute checkout root
	BuildDir   string   `toml:"build_dir"`   // relative to TopDir
	InitScript string   `toml:"init_script"` // relative to TopDir
	Shell      string   `toml:"shell"`       // shell used for source && command
	Machine    string   `toml:"machine"`
	Distro     string   `toml:"distro"`
	ExtraLines []string `toml:"extra_lines"` // verbatim local.conf lines
	Layers     []string `toml:"layers"`      // relative to TopDir, registered in order
	FetchImage string   `toml:"fetch_image"` // empty disables the fetch step
}

// Default returns the fixed settings for a checkout rooted at topDir.
func Default(topDir string) Settings {
	return Settings{
		TopDir:     topDir,
		BuildDir:   DefaultBuildDir,
		InitScript: DefaultInitScript,
		Shell:      DefaultShell,
		Machine:    DefaultMachine,
		Distro:     DefaultDistro,
		ExtraLines: DefaultExtraLines(),
		Layers:     DefaultLayers(),
	}
}

// BuildDirPath returns the absolute build directory.
func (s Settings) BuildDirPath() string {
	return filepath.Join(s.TopDir, s.BuildDir)
}

// InitScriptPath returns the absolute path of the environment init script.
func (s Settings) InitScriptPath() string {
	return filepath.Join(s.TopDir, s.InitScript)
}

// LocalConfPath returns <build-dir>/conf/local.conf.
func (s Settings) LocalConfPath() string {
	return filepath.Join(s.BuildDirPath(), "conf", "local.conf")
}

// BBLayersPath returns <build-dir>/conf/bblayers.conf.
func (s Settings) BBLayersPath() string {
	return filepath.Join(s.BuildDirPath(), "conf", "bblayers.conf")
}

// LayerPaths returns the absolute layer paths in registration order.
func (s Settings) LayerPaths() []string {
	paths := make([]string, len(s.Layers))
	for i, layer := range s.Layers {
		paths[i] = filepath.Join(s.TopDir, layer)
	}
	return paths
}

// ConfLines returns the variable assignments placed between the markers.
func (s Settings) ConfLines() []string {
	lines := []string{
		fmt.Sprintf(`MACHINE = "%s"`, s.Machine),
		fmt.Sprintf(`DISTRO = "%s"`, s.Distro),
	}
	return append(lines, s.ExtraLines...)
}

// Block returns the marker-framed block appended to local.conf.
func (s Settings) Block() localconf.Block {
	return localconf.Block{
		StartMarker: StartMarker,
		EndMarker:   EndMarker,
		Lines:       s.ConfLines(),
	}
}

// SourceHint is the command a user runs to enter the build environment.
func (s Settings) SourceHint() string {
	return fmt.Sprintf("source %s %s", s.InitScript, s.BuildDir)
}

// Clone returns a copy whose slices do not alias s.
func (s Settings) Clone() Settings {
	s.ExtraLines = slices.Clone(s.ExtraLines)
	s.Layers = slices.Clone(s.Layers)
	return s
}

// Encode renders the settings in override-file form.
func (s Settings) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return buf.String(), nil
}

// rawSettings distinguishes "not set" from zero values while decoding.
type rawSettings struct {
	BuildDir   string   `toml:"build_dir"`
	InitScript string   `toml:"init_script"`
	Shell      string   `toml:"shell"`
	Machine    string   `toml:"machine"`
	Distro     string   `toml:"distro"`
	ExtraLines []string `toml:"extra_lines"`
	Layers     []string `toml:"layers"`
	FetchImage string   `toml:"fetch_image"`
}

// Load returns the settings for topDir, applying topDir/.jetson-hooks.toml if present.
// A missing file yields Default(topDir) with no error.
func Load(topDir string) (Settings, error) {
	s := Default(topDir)
	path := filepath.Join(topDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, Validate(s)
		}
		return s, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawSettings
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return s, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalid, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	s = merge(s, raw, md)
	if err := validate(s); err != nil {
		return s, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	return s, nil
}

// merge overlays keys present in the file onto base.
func merge(base Settings, raw rawSettings, md toml.MetaData) Settings {
	if md.IsDefined("build_dir") {
		base.BuildDir = raw.BuildDir
	}
	if md.IsDefined("init_script") {
		base.InitScript = raw.InitScript
	}
	if md.IsDefined("shell") {
		base.Shell = raw.Shell
	}
	if md.IsDefined("machine") {
		base.Machine = raw.Machine
	}
	if md.IsDefined("distro") {
		base.Distro = raw.Distro
	}
	if md.IsDefined("extra_lines") {
		base.ExtraLines = raw.ExtraLines
	}
	if md.IsDefined("layers") {
		base.Layers = raw.Layers
	}
	if md.IsDefined("fetch_image") {
		base.FetchImage = raw.FetchImage
	}
	return base
}

const defaultConfig = `# jetson-hooks configuration
# Every key is optional; unset keys keep the built-in Jetson defaults.
# Paths are relative to the checkout root.

# Build directory created by the init script
# build_dir = "build-jetson"

# Environment init script, sourced before every bitbake command
# init_script = "sources/poky/oe-init-build-env"

# Shell used to run "source <init_script> <build_dir> && <command>"
# shell = "/bin/bash"

# Values written between the marker comments in conf/local.conf
# machine = "jetson-nano-devkit"
# distro = "hehos"
# extra_lines = ['PACKAGECONFIG:append:pn-weston = " rdp"']

# Layers registered with bitbake-layers add-layer, in order
# layers = [
#   "sources/meta-openembedded/meta-oe",
#   "sources/meta-openembedded/meta-python",
#   "sources/meta-openembedded/meta-networking",
#   "sources/meta-openembedded/meta-multimedia",
#   "sources/meta-tegra",
#   "sources/meta-coda",
# ]

# Image whose sources are pre-fetched after layer registration.
# Empty skips the fetch step.
# fetch_image = "core-image-weston"
`

// DefaultConfig returns the commented template written by Init.
func DefaultConfig() string {
	return defaultConfig
}

// Init writes the default override file into topDir.
// If force is true, an existing file is overwritten.
// Returns the path to the written file.
func Init(topDir string, force bool) (string, error) {
	path := filepath.Join(topDir, FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}
