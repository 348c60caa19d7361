package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"platstub/internal/domain"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <module>",
		Short: "Check a built artifact against its build record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.ModuleName(args[0])
			rec, ok, err := appCtx.Records.LatestRecord(name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no build record for module %q", name)
			}
			if err := appCtx.Classify.Verify(rec); err != nil {
				return fmt.Errorf("verify %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ok: %s (%s, built for %s)\n",
				name, rec.Artifact.Path, rec.Artifact.Format, rec.Platform)
			return nil
		},
	}
}
