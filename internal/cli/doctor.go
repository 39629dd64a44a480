package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moriware/rncreate/internal/project"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the project's dependencies against the templates",
		Long: `Read package.json in the current directory and check that the packages
the generated files import are declared, at versions the templates support.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			checks, err := project.Diagnose(a.Fs, a.WorkDir)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Project dependencies:")
			project.Print(out, checks)
			fmt.Fprintln(out)

			if project.Healthy(checks) {
				fmt.Fprintln(out, "All required dependencies found.")
				return nil
			}
			fmt.Fprintln(out, "Some required dependencies are missing. Generated files may not compile.")
			return nil
		},
	}
}
