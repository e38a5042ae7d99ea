package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hehos/jetson-hooks/internal/bitbake"
	"github.com/hehos/jetson-hooks/internal/config"
	"github.com/hehos/jetson-hooks/internal/hook"
	"github.com/hehos/jetson-hooks/internal/log"
	"github.com/hehos/jetson-hooks/internal/ui/progress"
)

func newPostSyncCmd() *cobra.Command {
	var (
		hookArgs []string
		dryRun   bool
		fetch    string
		buildDir string
	)

	cmd := &cobra.Command{
		Use:     "post-sync",
		Short:   "Initialize and configure the Yocto build directory",
		Aliases: []string{"run"},
		GroupID: GroupHook,
		Args:    cobra.NoArgs,
		Long: `Initialize and configure the Yocto build directory.

Steps, each of which must succeed before the next starts:
  1. source sources/poky/oe-init-build-env build-jetson
  2. append the Jetson settings block to conf/local.conf (once)
  3. bitbake-layers add-layer for each configured layer
  4. bitbake <image> --runall=fetch, if an image is configured

A failing command stops the hook; its exit code becomes the hook's.`,
		Example: `  jetson-hook post-sync                              # Run from the checkout root
  jetson-hook post-sync -C ~/src/jetson              # Run against another checkout
  jetson-hook post-sync --fetch core-image-weston    # Also pre-fetch image sources
  jetson-hook post-sync -d                           # Print commands without running them
  jetson-hook post-sync -a project_list=meta-tegra   # Pass hook arguments (logged only)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			kwargs, err := parseArgs(hookArgs)
			if err != nil {
				return err
			}

			settings, err := loadSettings(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fetch") {
				settings.FetchImage = fetch
			}
			if cmd.Flags().Changed("build-dir") {
				settings.BuildDir = buildDir
			}
			if err := config.Validate(settings); err != nil {
				return err
			}

			l.Debug("running post-sync hook", "topDir", settings.TopDir, "buildDir", settings.BuildDir, "dryRun", dryRun)

			opts := []hook.Option{hook.WithDryRun(dryRun)}
			if isTerminal(cmd.ErrOrStderr()) && !l.IsVerbose() {
				opts = append(opts, hook.WithFetchSpinner(func(msg string) hook.Spinner {
					return progress.NewSpinner(cmd.ErrOrStderr(), msg)
				}))
			}

			runner := bitbake.NewShellRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
			runner.Stdin = cmd.InOrStdin()
			if err := hook.New(settings, runner, opts...).Run(ctx, kwargs); err != nil {
				return fmt.Errorf("post-sync failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&hookArgs, "arg", "a", nil, "Hook argument KEY=VALUE (repeatable)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print commands without executing")
	cmd.Flags().StringVar(&fetch, "fetch", "", "Pre-fetch sources for this image (overrides fetch_image)")
	cmd.Flags().StringVar(&buildDir, "build-dir", "", "Build directory relative to the checkout root (default "+config.DefaultBuildDir+")")
	cmd.RegisterFlagCompletionFunc("arg", cobra.NoFileCompletions)
	cmd.RegisterFlagCompletionFunc("fetch", cobra.NoFileCompletions)

	return cmd
}

