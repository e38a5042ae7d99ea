package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hehos/jetson-hooks/internal/log"
	"github.com/hehos/jetson-hooks/internal/output"
)

func newEnvCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "env",
		Short:   "Print the command that enters the build environment",
		GroupID: GroupInspect,
		Args:    cobra.NoArgs,
		Long: `Print the command that enters the build environment.

The init script must be sourced by your own shell, so jetson-hook can
only print the command. Run it from the checkout root.`,
		Example: `  jetson-hook env           # source sources/poky/oe-init-build-env build-jetson
  jetson-hook env --copy    # Also copy it to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			settings, err := loadSettings(ctx)
			if err != nil {
				return err
			}

			hint := settings.SourceHint()
			out.Println(hint)

			if copyToClipboard {
				if err := clipboard.WriteAll(hint); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Println("Copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the command to the clipboard")

	return cmd
}
