package main

import (
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Load a grammar file and verify it",
		Long:          "Load a grammar file and verify it. EBNF files are additionally checked for undefined and unreachable productions when --start is given.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			out := cmd.OutOrStdout()

			if strings.EqualFold(filepath.Ext(filename), ".ebnf") {
				if err := grammar.VerifyEBNF(filename, startProduction); err != nil {
					printErrors(out, err)
					return err
				}
			}

			g, err := grammar.Load(filename)
			if err != nil {
				printErrors(out, err)
				return err
			}
			if startProduction != "" {
				g.Start = startProduction
			}
			if len(g.Pool.Expanding(g.Start)) == 0 {
				err := fmt.Errorf("%s: no rule expands start category %s", filename, g.Start)
				printErrors(out, err)
				return err
			}

			fmt.Fprintf(out, "%s: %d rules, %d words, start %s\n", filename, g.Pool.Len(), g.Lexicon.Len(), g.Start)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start category (EBNF files are only syntax-checked if empty)")

	return cmd
}

func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
