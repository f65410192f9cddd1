package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int
	var logPath string

	rootCmd := &cobra.Command{
		Use:   "chartparse",
		Short: "Bottom-up and top-down chart parsing for context-free grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logPath != "" {
				path = &logPath
			}
			commonlog.Configure(verbosity, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRulesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
