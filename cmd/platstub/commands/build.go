package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"platstub/internal/domain"
)

func buildCmd() *cobra.Command {
	var (
		outputDir   string
		skip        bool
		pathPrepend []string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build all declared extension modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := appCtx.Discover.Discover(appCtx.Config.Root)
			if err != nil {
				return err
			}
			if len(mods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no extension modules found")
				return nil
			}

			opts := domain.BuildOptions{
				OutputDir: outputDir,
				Skip:      skip || appCtx.Config.Skip,
				CC:        appCtx.Config.CC,
				ExtraPath: pathPrepend,
			}

			if !opts.Skip {
				// Fail early with install hints instead of a raw exec error.
				statuses, err := appCtx.Probe.Probe(cmd.Context())
				if err != nil {
					return err
				}
				for _, st := range statuses {
					if !st.Found {
						return fmt.Errorf("%s not available; %s", st.Tool, st.Hint)
					}
				}
			}

			recs, err := appCtx.Build.BuildAll(cmd.Context(), mods, opts)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, recs)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d modules built\n", len(recs), len(mods))
			return nil
		},
	}
	cmd.Flags().StringVar(&outputDir, "out", "", "artifact output dir (default: next to each manifest)")
	cmd.Flags().BoolVar(&skip, "skip-native", false, "skip native builds (same as PLATSTUB_SKIP_NATIVE=1)")
	cmd.Flags().StringSliceVar(&pathPrepend, "path-prepend", nil, "directories to prepend to PATH for build subprocesses")
	return cmd
}
