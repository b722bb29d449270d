package cmd

import (
	"fmt"
	"strings"

	"convar/internal/demo"
	"convar/pkg/cvar"

	"github.com/spf13/cobra"
)

// newEvalCmd creates the command evaluating command lines against a
// fresh demo configuration without starting the REPL. Useful for
// scripting and for piping a short session:
//
//	convar eval "arena.width 120" "arena.width" "reset"
func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <command>...",
		Short: "Evaluate console commands non-interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			console := cvar.New(demo.NewGameConfig())

			failed := false
			for _, line := range args {
				lines, err := console.Eval(cmd.Context(), line)
				for _, l := range lines {
					fmt.Fprintln(cmd.OutOrStdout(), l)
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("one or more commands failed")
			}
			return nil
		},
		Example: strings.Join([]string{
			`  convar eval "arena.width 120"`,
			`  convar eval "find paddle"`,
			`  convar eval reset`,
		}, "\n"),
	}
}
