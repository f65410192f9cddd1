package main

import (
	"fmt"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var grammarPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules and lexicon of a grammar in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(grammarPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start %s\n", g.Start)
			for _, r := range g.Pool.Rules() {
				fmt.Fprintf(out, "%d\t%s\n", r.ID, r)
			}
			for _, w := range g.Lexicon.Words() {
				fmt.Fprintf(out, "%s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "grammar file (.yaml, .yml, .json, .jsonc or .ebnf)")
	_ = cmd.MarkFlagRequired("grammar")

	return cmd
}
