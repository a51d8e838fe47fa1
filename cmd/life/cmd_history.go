package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"termlife/internal/config"
	"termlife/internal/journal"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished runs from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			limit, _ := cmd.Flags().GetInt("limit")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if p, _ := cmd.Flags().GetString("journal"); p != "" {
				cfg.Journal.Path = p
			}
			if cfg.Journal.Path == "" {
				return fmt.Errorf("no journal configured: pass --journal or set journal.path")
			}

			j, err := journal.Open(cmd.Context(), cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer j.Close()

			runs, err := j.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFINISHED\tSIZE\tSOURCE\tGENERATIONS\tREASON\tPOPULATION")
			for _, r := range runs {
				fmt.Fprintf(w, "%d\t%s\t%dx%d\t%s\t%d\t%s\t%d\n",
					r.ID, r.FinishedAt.Local().Format(time.DateTime), r.Width, r.Height,
					r.Source, r.Generations, r.Reason, r.Population)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("limit", 20, "maximum number of runs to show")
	cmd.Flags().String("journal", "", "sqlite journal file")
	return cmd
}
