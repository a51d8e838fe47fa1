package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life in the terminal",
		Long: `life runs Conway's Game of Life on a toroidal grid.

The initial state is read from stdin as whitespace-separated 0/1 values in
row-major order, or taken from a built-in pattern or random fill. The run
ends when the board stops changing, settles into a period-2 oscillation, or
you press q. Use a to slow down and z to speed up.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML config file")

	rootCmd.AddCommand(
		newRunCmd(),
		newPatternsCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "life version %s\n", version)
		},
	}
}
