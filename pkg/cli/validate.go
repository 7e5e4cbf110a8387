package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/frost/pkg/engine"
	"github.com/chazu/frost/pkg/scene"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Evaluate a scene script and report validation findings",
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

			out := cmd.OutOrStdout()
			result := scene.Validate(s)
			for _, e := range result.Errors {
				fmt.Fprintln(out, e.Error())
			}
			for _, w := range result.Warnings {
				if w.Flake == "" {
					fmt.Fprintf(out, "[warning] %s\n", w.Message)
					continue
				}
				fmt.Fprintf(out, "[warning] flake %q: %s\n", w.Flake, w.Message)
			}

			if !result.OK() {
				return fmt.Errorf("%s: scene is invalid", args[0])
			}
			fmt.Fprintf(out, "%d flakes, scene is valid\n", s.FlakeCount())
			return nil
		},
	}
	return cmd
}
