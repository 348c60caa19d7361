package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"platstub/internal/domain"
)

func initCmd() *cobra.Command {
	var (
		name   string
		symbol string
	)
	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Scaffold a placeholder extension into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := appCtx.Scaffold.Scaffold(args[0], domain.ScaffoldOptions{
				Name:   domain.ModuleName(name),
				Symbol: symbol,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range written {
				fmt.Fprintln(out, "wrote", p)
			}
			fmt.Fprintln(out, "build it with: platstub build --root", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "module name (default: directory basename)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "exported symbol name (default Noop)")
	return cmd
}
