package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/hehos/jetson-hooks/internal/hook"
	"github.com/hehos/jetson-hooks/internal/log"
	"github.com/hehos/jetson-hooks/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupHook    = "hook"
	GroupInspect = "inspect"
	GroupConfig  = "config"
)

type topDirKey struct{}

// rootOptions holds the persistent flags.
type rootOptions struct {
	verbose bool
	quiet   bool
	topDir  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "jetson-hook",
		Short: "Yocto build environment setup for the Jetson Nano checkout",
		Long: `jetson-hook prepares a Yocto build directory after a repo sync.

Run as a post-sync hook it initializes build-jetson, appends the Jetson
settings to conf/local.conf once, and registers the required layers
with bitbake-layers.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			return setupContext(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.PersistentFlags().StringVarP(&opts.topDir, "top-dir", "C", "", "Checkout root (default: current directory)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkPersistentFlagDirname("top-dir")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupHook, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspection Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newPostSyncCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newLayersCmd())
	cmd.AddCommand(newEnvCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// setupContext attaches the logger, printer and checkout root to the command context.
func setupContext(cmd *cobra.Command, opts *rootOptions) error {
	topDir := opts.topDir
	if topDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		topDir = wd
	}
	topDir, err := filepath.Abs(topDir)
	if err != nil {
		return fmt.Errorf("resolve top dir: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	environ := os.Environ()
	stderr := colorprofile.NewWriter(cmd.ErrOrStderr(), environ)
	stdout := colorprofile.NewWriter(cmd.OutOrStdout(), environ)

	ctx = log.WithLogger(ctx, log.New(stderr, opts.verbose, opts.quiet))
	ctx = output.WithPrinter(ctx, stdout)
	ctx = context.WithValue(ctx, topDirKey{}, topDir)
	cmd.SetContext(ctx)
	return nil
}

// topDirFromContext returns the checkout root resolved by setupContext.
func topDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(topDirKey{}).(string); ok {
		return dir
	}
	return "."
}

// Execute runs the CLI and exits with the hook's exit code on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%sERROR: %v\n", log.Prefix, err)
		os.Exit(hook.ExitCode(err))
	}
}
