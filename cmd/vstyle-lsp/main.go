package main

import (
	"os"

	"github.com/jsvensson/viewstyle/internal/lsp"
	"github.com/spf13/cobra"
)

var (
	flagVerbose int
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "vstyle-lsp",
	Short:   "Language server for .vstyle style sheets",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := lsp.NewServer(version)
		s.Verbosity = flagVerbose
		return s.Run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
