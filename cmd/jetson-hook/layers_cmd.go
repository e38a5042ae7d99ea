package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hehos/jetson-hooks/internal/layers"
	"github.com/hehos/jetson-hooks/internal/output"
	"github.com/hehos/jetson-hooks/internal/ui/static"
	"github.com/hehos/jetson-hooks/internal/ui/styles"
)

func newLayersCmd() *cobra.Command {
	var pathsOnly bool

	cmd := &cobra.Command{
		Use:               "layers [filter]",
		Short:             "List the configured layers",
		Aliases:           []string{"ls"},
		GroupID:           GroupInspect,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeLayerArg,
		Long: `List the configured layers in registration order.

For each layer shows whether its directory exists and whether it is
registered in conf/bblayers.conf. An optional filter fuzzy-matches
layer paths; matches are listed best first.`,
		Example: `  jetson-hook layers            # All layers
  jetson-hook layers tegra      # Fuzzy filter
  jetson-hook layers -p         # Absolute paths only, one per line`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			settings, err := loadSettings(ctx)
			if err != nil {
				return err
			}

			all, err := layers.Inspect(settings)
			if err != nil {
				return err
			}

			var filter string
			if len(args) == 1 {
				filter = args[0]
			}
			matched := layers.Filter(all, filter)
			if len(matched) == 0 {
				return fmt.Errorf("no layer matches %q", filter)
			}

			if pathsOnly {
				for _, l := range matched {
					out.Println(l.Path)
				}
				return nil
			}

			rows := make([][]string, len(matched))
			for i, l := range matched {
				rows[i] = []string{
					strconv.Itoa(l.Index),
					l.Rel,
					styles.YesNo(l.Exists && l.HasLayerConf),
					styles.YesNo(l.Registered),
				}
			}
			out.Text(static.RenderTable([]string{"#", "LAYER", "PRESENT", "REGISTERED"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pathsOnly, "paths", "p", false, "Print absolute layer paths only")

	return cmd
}

// completeLayerArg completes layer paths from the effective settings.
func completeLayerArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	settings, err := loadSettings(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return layers.Complete(settings, toComplete), cobra.ShellCompDirectiveNoFileComp
}
