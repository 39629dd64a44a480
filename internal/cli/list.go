package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moriware/rncreate/internal/scaffold"
)

// listEntry is one row of the list output.
type listEntry struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

func (a *App) newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the artifact kinds that can be generated",
		Long: `List every artifact kind with its menu label and the directory its files
are written to, relative to the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []listEntry
			for _, k := range scaffold.Kinds() {
				g, ok := a.registry.Lookup(k)
				if !ok {
					continue
				}
				entries = append(entries, listEntry{
					Kind:   string(k),
					Label:  g.Label(),
					Target: a.displayPath(g.BasePath("<name>")),
				})
			}

			if asJSON {
				return printListJSON(cmd, entries)
			}
			return printListTable(cmd, entries)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tLABEL\tTARGET")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Kind, e.Label, e.Target)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
