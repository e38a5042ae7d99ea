package main

import (
	"github.com/spf13/cobra"

	"github.com/hehos/jetson-hooks/internal/config"
	"github.com/hehos/jetson-hooks/internal/log"
	"github.com/hehos/jetson-hooks/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage jetson-hook configuration.

Settings default to the Jetson Nano layout. A ` + config.FileName + ` file at
the checkout root overrides individual values.`,
		Example: `  jetson-hook config init     # Create a commented override file
  jetson-hook config show     # Show effective settings`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create " + config.FileName + " in the checkout root",
		Args:  cobra.NoArgs,
		Example: `  jetson-hook config init      # Create override file
  jetson-hook config init -f   # Overwrite existing file
  jetson-hook config init -s   # Print template to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if stdout {
				output.FromContext(ctx).Text(config.DefaultConfig())
				return nil
			}

			path, err := config.Init(topDirFromContext(ctx), force)
			if err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			settings, err := loadSettings(ctx)
			if err != nil {
				return err
			}
			text, err := settings.Encode()
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			out.Printf("# checkout: %s\n", settings.TopDir)
			out.Text(text)
			return nil
		},
	}
}
