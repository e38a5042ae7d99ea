package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hehos/jetson-hooks/internal/doctor"
	"github.com/hehos/jetson-hooks/internal/output"
	"github.com/hehos/jetson-hooks/internal/ui/static"
	"github.com/hehos/jetson-hooks/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the checkout and build directory",
		GroupID: GroupInspect,
		Args:    cobra.NoArgs,
		Long: `Check the checkout and build directory.

Required (fail the command):
- The shell used for sourcing is installed
- The init script exists
- Every layer directory exists with conf/layer.conf

Advisory (reported as warnings):
- The build directory exists
- conf/local.conf contains the settings block
- Every layer is listed in conf/bblayers.conf`,
		Example: `  jetson-hook doctor          # Check for issues
  jetson-hook doctor --fix    # Append a missing local.conf settings block`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			settings, err := loadSettings(ctx)
			if err != nil {
				return err
			}

			report := doctor.Run(settings, fix)
			out.Text(static.RenderTable([]string{"", "CHECK", "DETAIL"}, checkRows(report)))

			failed, warnings := report.Failed(), report.Warnings()
			switch {
			case failed > 0:
				out.Println(styles.Fail(fmt.Sprintf("%d required check(s) failed, %d warning(s)", failed, warnings)))
				return fmt.Errorf("%d required check(s) failed", failed)
			case warnings > 0:
				out.Println(styles.Warn(fmt.Sprintf("%d warning(s); run 'jetson-hook post-sync' to set up the build directory", warnings)))
			default:
				out.Println(styles.OK("All checks passed"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Append the settings block to local.conf if missing")

	return cmd
}

// checkRows turns a report into table rows with a status mark per check.
func checkRows(r doctor.Report) [][]string {
	rows := make([][]string, 0, len(r.Checks))
	for _, c := range r.Checks {
		mark := styles.SuccessStyle.Render(styles.MarkOK)
		name := c.Name
		switch {
		case c.Fixed:
			name += " (fixed)"
		case !c.OK && c.Severity == doctor.Required:
			mark = styles.ErrorStyle.Render(styles.MarkFail)
		case !c.OK:
			mark = styles.WarningStyle.Render(styles.MarkWarn)
		}
		rows = append(rows, []string{mark, name, c.Detail})
	}
	return rows
}
