package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/frost/pkg/engine"
	"github.com/chazu/frost/pkg/log"
	"github.com/chazu/frost/pkg/trace"
)

func newEvalCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a scene script and print the paths of all flakes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			s, evalErrs, err := engine.NewEngine().Evaluate(string(source))
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					fmt.Fprintln(cmd.ErrOrStderr(), e.Error())
				}
				return fmt.Errorf("%s: evaluation failed", args[0])
			}
			log.Debugw("scene evaluated", "flakes", s.FlakeCount())

			paths, err := trace.Trace(s)
			if err != nil {
				return err
			}
			return writePaths(cmd.OutOrStdout(), paths, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}
