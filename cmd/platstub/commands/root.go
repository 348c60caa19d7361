package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"platstub/internal/app"
)

var (
	sourceRoot string
	stateDir   string
	ccOverride string
	jsonOut    bool

	appCtx *app.Wire
)

// Execute runs the platstub CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "platstub",
		Short: "Placeholder native-extension toolkit for platform-specific packaging",
		Long: "platstub builds and inspects placeholder native artifacts: tiny shared\n" +
			"libraries whose only job is to make a packaging toolchain classify a\n" +
			"distribution as platform-specific rather than pure.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCtx, err = app.NewWire(app.Config{
				Root:     sourceRoot,
				StateDir: stateDir,
				CC:       ccOverride,
				Out:      cmd.OutOrStdout(),
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&sourceRoot, "root", ".", "source root scanned for extension manifests")
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "build record dir (default ~/.platstub)")
	root.PersistentFlags().StringVar(&ccOverride, "cc", "", "C compiler for cgo (default $CC, then cc)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "output machine-readable JSON where applicable")

	root.AddCommand(initCmd(), probeCmd(), discoverCmd(), buildCmd(), classifyCmd(), verifyCmd())
	return root.Execute()
}

// writeJSON prints v as indented JSON on the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
