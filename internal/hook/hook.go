package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hehos/jetson-hooks/internal/bitbake"
	"github.com/hehos/jetson-hooks/internal/config"
	"github.com/hehos/jetson-hooks/internal/localconf"
	"github.com/hehos/jetson-hooks/internal/log"
)

// FetchLogName is the file in the build directory that receives fetch output
// while a spinner is shown.
const FetchLogName = "fetch.log"

// Spinner is shown while the fetch step runs. UpdateMessage receives the
// latest fetch output line.
type Spinner interface {
	Start()
	UpdateMessage(msg string)
	Stop() time.Duration
}

// Hook is one configured post-sync hook.
type Hook struct {
	settings   config.Settings
	env        bitbake.Env
	runner     bitbake.Runner
	dryRun     bool
	newSpinner func(msg string) Spinner
}

// Option configures a Hook.
type Option func(*Hook)

// WithDryRun makes the hook print commands and the local.conf block instead
// of running or writing anything.
func WithDryRun(dryRun bool) Option {
	return func(h *Hook) { h.dryRun = dryRun }
}

// WithFetchSpinner shows a spinner during the fetch step and sends the
// fetch output to <build-dir>/fetch.log instead of the terminal. The spinner
// message follows the last line of that output.
func WithFetchSpinner(newSpinner func(msg string) Spinner) Option {
	return func(h *Hook) { h.newSpinner = newSpinner }
}

// New creates a hook for s. s is copied; later changes by the caller have no effect.
func New(s config.Settings, runner bitbake.Runner, opts ...Option) *Hook {
	s = s.Clone()
	h := &Hook{
		settings: s,
		env:      bitbake.EnvFromSettings(s),
		runner:   runner,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes all steps in order and returns the first failure as a *StepError.
// args are the hook arguments passed by the checkout tool; they are only logged.
func (h *Hook) Run(ctx context.Context, args map[string]string) error {
	l := log.FromContext(ctx)
	s := h.settings

	l.Hookf("Hook called with arguments: %v", args)
	l.Banner("Starting post-sync Yocto environment configuration")
	if h.dryRun {
		l.Hookf("Dry run: no command is executed and no file is written.")
	}

	l.Hookf("Initializing build directory at: %s", s.BuildDirPath())
	if err := h.run(ctx, h.env.Init()); err != nil {
		return &StepError{Step: StepInit, Err: err}
	}
	l.Hookf("Build directory is at: %s", s.BuildDirPath())

	if err := h.configureLocalConf(ctx); err != nil {
		return &StepError{Step: StepLocalConf, Err: err}
	}

	l.Hookf("Configuring conf/bblayers.conf...")
	for _, path := range s.LayerPaths() {
		if err := h.run(ctx, h.env.AddLayer(path)); err != nil {
			return &StepError{Step: StepLayers, Err: err}
		}
	}

	if s.FetchImage != "" {
		if err := h.fetch(ctx); err != nil {
			return &StepError{Step: StepFetch, Err: err}
		}
	}

	l.Banner("Yocto environment setup is complete!")
	l.Printf("Your build directory is '%s'.\n", s.BuildDir)
	l.Printf("To use it, run: %s\n", s.SourceHint())
	return nil
}

// run executes one invocation, or only prints it in dry-run mode.
func (h *Hook) run(ctx context.Context, inv bitbake.Invocation) error {
	l := log.FromContext(ctx)
	l.Hookf("Running command: %s", inv.Script)
	if h.dryRun {
		return nil
	}
	return h.runner.Run(ctx, inv)
}

func (h *Hook) configureLocalConf(ctx context.Context) error {
	l := log.FromContext(ctx)
	path := h.settings.LocalConfPath()
	block := h.settings.Block()

	l.Hookf("Configuring %s...", path)

	if h.dryRun {
		found, err := localconf.HasMarker(path, block.StartMarker)
		if err != nil && !errors.Is(err, localconf.ErrNotFound) {
			return err
		}
		if found {
			l.Hookf("Custom settings already exist in local.conf. Skipping.")
			return nil
		}
		l.Hookf("Would append to local.conf:")
		l.Printf("%s", block.String())
		return nil
	}

	res, err := localconf.Ensure(path, block)
	if err != nil {
		return err
	}
	switch res {
	case localconf.Appended:
		l.Hookf("Custom settings appended to local.conf.")
	case localconf.AlreadyPresent:
		l.Hookf("Custom settings already exist in local.conf. Skipping.")
	}
	return nil
}

func (h *Hook) fetch(ctx context.Context) error {
	l := log.FromContext(ctx)
	image := h.settings.FetchImage
	inv := h.env.Fetch(image)

	l.Hookf("Fetching sources for %s...", image)
	if h.dryRun || h.newSpinner == nil {
		return h.run(ctx, inv)
	}

	logPath := filepath.Join(h.settings.BuildDirPath(), FetchLogName)
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("create fetch log: %w", err)
	}
	defer f.Close()

	l.Hookf("Running command: %s", inv.Script)
	l.Hookf("Output is written to %s", logPath)

	msg := "Fetching sources for " + image
	sp := h.newSpinner(msg)
	status := &lineWriter{fn: func(line string) {
		sp.UpdateMessage(msg + ": " + truncate(line, maxStatusWidth))
	}}
	sp.Start()
	err = h.runner.RunTo(ctx, inv, io.MultiWriter(f, status))
	elapsed := sp.Stop()

	if err != nil {
		l.Hookf("Fetch failed, see %s", logPath)
		return err
	}
	l.Hookf("Sources for %s fetched in %s.", image, elapsed.Round(time.Second))
	return nil
}
