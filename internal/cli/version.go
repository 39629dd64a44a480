package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/moriware/rncreate/internal/branding"
)

func (a *App) newVersionCmd() *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			version := normalizeVersion(a.Build.Version)

			if short {
				fmt.Fprintln(out, version)
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": version,
					"commit":  a.Build.Commit,
					"date":    a.Build.Date,
				}
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), version, a.Build.Commit, a.Build.Date)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}

// normalizeVersion rewrites tags like "v1.2" as "1.2.0". Anything that is
// not a version, such as "dev", is returned as is.
func normalizeVersion(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return parsed.String()
}
