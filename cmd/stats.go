package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/dashboard"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		return withSession(cmd, false, func(d *deps) error {
			m := d.model
			st := dashboard.Summarize(m.LearnedLog, m.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Vocabulary")
			fmt.Fprintln(out, strings.Repeat("─", 40))
			fmt.Fprintf(out, "%-20s %8d\n", "Words", m.Size())
			fmt.Fprintf(out, "%-20s %8d\n", "Known", len(m.KnownList()))
			fmt.Fprintf(out, "%-20s %8d\n", "To learn", len(m.NewList()))
			fmt.Fprintf(out, "%-20s %8d\n", "Removed", len(m.Removed))
			fmt.Fprintf(out, "%-20s %8d\n", "Not yet seen", m.Remaining())
			fmt.Fprintf(out, "%-20s %8d\n", "Expressions", len(m.Expressions))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Learned")
			fmt.Fprintln(out, strings.Repeat("─", 40))
			fmt.Fprintf(out, "%-20s %8d\n", "Today", st.Today)
			fmt.Fprintf(out, "%-20s %8d\n", "This week", st.Week)
			fmt.Fprintf(out, "%-20s %8d\n", "This month", st.Month)
			fmt.Fprintf(out, "%-20s %8d\n", "This year", st.Year)
			fmt.Fprintf(out, "%-20s %8d\n", "Total", st.Total)

			if days > 0 {
				buckets := st.LastDays(days, 0)
				peak := max(dashboard.MaxCount(buckets), 1)
				fmt.Fprintln(out)
				for _, b := range buckets {
					bar := strings.Repeat("█", b.Count*30/peak)
					fmt.Fprintf(out, "%s  %-30s %d\n", b.Label, bar, b.Count)
				}
			}
			return nil
		})
	},
}

func init() {
	statsCmd.Flags().IntP("days", "d", 7, "Number of days to chart (0 to skip)")
}
