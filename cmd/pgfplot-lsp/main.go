package main

import (
	"os"

	"github.com/jsvensson/pgfplot/internal/lsp"
	"github.com/spf13/cobra"
)

var (
	flagVerbose int
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "pgfplot-lsp",
	Short:   "Language server for pgfplot figure scripts, over stdio",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lsp.NewServer(version).Run(flagVerbose)
	},
}

func init() {
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "log to stderr (repeat for more detail)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
