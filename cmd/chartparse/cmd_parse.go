package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/chartparse/format"
	"github.com/dhamidi/chartparse/grammar"
	"github.com/dhamidi/chartparse/lex"
	"github.com/dhamidi/chartparse/parse"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// strategyList is the --engine flag: a comma-separated list of strategies,
// or "both".
type strategyList []parse.Strategy

var _ pflag.Value = (*strategyList)(nil)

func (l *strategyList) String() string {
	names := make([]string, len(*l))
	for i, s := range *l {
		names[i] = s.String()
	}
	return strings.Join(names, ",")
}

func (l *strategyList) Set(v string) error {
	var out strategyList
	for _, name := range strings.Split(v, ",") {
		name = strings.TrimSpace(name)
		if name == "both" {
			out = append(out, parse.BottomUp, parse.TopDown)
			continue
		}
		var s parse.Strategy
		if err := s.Set(name); err != nil {
			return err
		}
		out = append(out, s)
	}
	*l = out
	return nil
}

func (l *strategyList) Type() string {
	return "strategies"
}

func newParseCmd() *cobra.Command {
	var grammarPath string
	var start string
	var width int
	var color bool
	engines := strategyList{parse.BottomUp, parse.TopDown}
	outputFormat := format.Text

	cmd := &cobra.Command{
		Use:   "parse [sentence...]",
		Short: "Parse a sentence and print the constituents and chart",
		Long: `Parse a sentence and print the constituents and chart.

The sentence is taken from the arguments, then from the grammar file's
"sentence" field, and finally defaults to every lexicon word in declaration
order. Unsegmented text is split by longest lexicon match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(grammarPath)
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			if start != "" {
				g.Start = start
			}

			words, err := sentence(g, args)
			if err != nil {
				return fmt.Errorf("read sentence: %w", err)
			}

			var opts []format.TextOption
			opts = append(opts, format.WithWidth(width))
			if color {
				opts = append(opts, format.WithColor())
			}
			out := cmd.OutOrStdout()
			encoder, err := format.New(outputFormat, out, opts...)
			if err != nil {
				return err
			}

			var ids grammar.Sequence
			p := parse.New(g.Pool, parse.WithStart(g.Start), parse.WithSequence(&ids))
			for _, s := range engines {
				result := p.Run(s, words)
				if outputFormat == format.Text {
					fmt.Fprintf(out, "%s:\n", s)
				}
				if err := encoder.Encode(result); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "grammar file (.yaml, .yml, .json, .jsonc or .ebnf)")
	cmd.Flags().StringVar(&start, "start", "", "start category (overrides the grammar file)")
	cmd.Flags().VarP(&engines, "engine", "e", "strategies to run: bottom-up, top-down or both")
	cmd.Flags().VarP(&outputFormat, "format", "f", "output format (text, line, json)")
	cmd.Flags().IntVarP(&width, "width", "w", format.DefaultWidth, "columns per sentence position in text output")
	cmd.Flags().BoolVar(&color, "color", false, "highlight complete parses in text output")
	_ = cmd.MarkFlagRequired("grammar")

	return cmd
}

func sentence(g *grammar.Grammar, args []string) ([]grammar.Word, error) {
	switch {
	case len(args) > 0:
		return lex.Tokenize(g.Lexicon, strings.Join(args, " "))
	case g.Sentence != "":
		return lex.Tokenize(g.Lexicon, g.Sentence)
	default:
		return g.Lexicon.Words(), nil
	}
}
