package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/selection"
	"github.com/abhisek/wordz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded word activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		action, _ := cmd.Flags().GetString("action")
		word, _ := cmd.Flags().GetString("word")
		since, _ := cmd.Flags().GetString("since")
		counts, _ := cmd.Flags().GetBool("counts")

		return withSession(cmd, false, func(d *deps) error {
			if d.events == nil {
				return fmt.Errorf("activity log unavailable")
			}
			opts := store.QueryOpts{Limit: limit, Action: action, Word: word}
			if since != "" {
				t, ok := selection.ParseDate(since, time.Now())
				if !ok {
					return fmt.Errorf("invalid date %q", since)
				}
				opts.From = t
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if counts {
				opts.Limit = 0
				list, err := d.events.ActionCounts(ctx, opts)
				if err != nil {
					return fmt.Errorf("query counts: %w", err)
				}
				for _, c := range list {
					fmt.Fprintf(out, "%-12s %8d\n", c.Action, c.Count)
				}
				return nil
			}

			events, err := d.events.QueryWordEvents(ctx, opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(out, "No events found.")
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-19s  %-10s  %-24s  %s\n", "Seq", "Timestamp", "Action", "Word", "Detail")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, e := range events {
				fmt.Fprintf(out, "%-6d  %-19s  %-10s  %-24s  %s\n",
					e.Sequence,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Action,
					truncate(e.Word, 24),
					e.Detail)
			}
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 30, "Number of events to show")
	historyCmd.Flags().StringP("action", "a", "", "Filter by action (known, new, removed, renamed, ...)")
	historyCmd.Flags().StringP("word", "w", "", "Filter by word")
	historyCmd.Flags().String("since", "", "Only events on or after this date")
	historyCmd.Flags().Bool("counts", false, "Show counts per action instead of events")
}
