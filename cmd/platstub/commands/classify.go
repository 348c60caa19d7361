package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"platstub/internal/domain"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [dir]",
		Short: "Report whether a distribution tree is pure or platform-specific",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := appCtx.Config.Root
			if len(args) == 1 {
				root = args[0]
			}
			rep, err := appCtx.Classify.Classify(root)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, rep)
			}
			out := cmd.OutOrStdout()
			if rep.Classification == domain.ClassPure {
				fmt.Fprintf(out, "%s: pure (%d files scanned)\n", rep.Root, rep.FilesScanned)
				return nil
			}
			fmt.Fprintf(out, "%s: platform-specific (%s)\n", rep.Root, rep.Platform)
			for _, a := range rep.Native {
				fmt.Fprintf(out, "  %s\t%s\t%d bytes\n", a.Path, a.Format, a.Size)
			}
			return nil
		},
	}
}
