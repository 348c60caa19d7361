package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Report build toolchain availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := appCtx.Probe.Probe(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, statuses)
			}
			out := cmd.OutOrStdout()
			for _, st := range statuses {
				if st.Found {
					fmt.Fprintf(out, "%-8s %s (%s)\n", st.Tool, st.Version, st.Path)
					continue
				}
				fmt.Fprintf(out, "%-8s not found; %s\n", st.Tool, st.Hint)
			}
			return nil
		},
	}
}
