package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func discoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "List declared extension modules under the source root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := appCtx.Discover.Discover(appCtx.Config.Root)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, mods)
			}
			out := cmd.OutOrStdout()
			if len(mods) == 0 {
				fmt.Fprintln(out, "no extension modules found")
				return nil
			}
			for _, m := range mods {
				opt := ""
				if m.Optional {
					opt = " (optional)"
				}
				fmt.Fprintf(out, "%s\t%s%s\n", m.Name, m.Dir, opt)
			}
			return nil
		},
	}
}
