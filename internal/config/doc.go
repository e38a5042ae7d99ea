// Package config holds the settings the post-sync hook runs with.
//
// Settings are plain values handed to the hook; nothing in this package is
// process-global. [Default] reproduces the fixed Jetson build layout:
//
//	build dir:    build-jetson
//	init script:  sources/poky/oe-init-build-env
//	MACHINE:      jetson-nano-devkit
//	DISTRO:       hehos
//	layers:       meta-oe, meta-python, meta-networking, meta-multimedia,
//	              meta-tegra, meta-coda
//
// # Override File
//
// A checkout may carry a .jetson-hooks.toml at its root. Any key set there
// replaces the default; unset keys keep it:
//
//	machine = "jetson-orin-nano-devkit"
//	fetch_image = "core-image-weston"
//	layers = ["sources/meta-openembedded/meta-oe", "sources/meta-tegra"]
//
// All paths in the file are relative to the checkout root and may not
// escape it. The marker comments framing the local.conf block are not
// configurable, so re-runs always recognise an earlier block.
package config
