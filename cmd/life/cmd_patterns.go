package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"termlife/internal/seed"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List built-in seed patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tDESCRIPTION")
			for _, p := range seed.Patterns() {
				h, wd := p.Bounds()
				fmt.Fprintf(w, "%s\t%dx%d\t%s\n", p.Name, wd, h, p.Description)
			}
			return w.Flush()
		},
	}
}
