package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/words"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Add, list and correct vocabulary words",
}

// withSession runs fn with a loaded session and, when save is set, saves
// afterwards even if fn failed. A failed save takes precedence.
func withSession(cmd *cobra.Command, save bool, fn func(d *deps) error) error {
	d, err := setup(cmd, setupOpts{})
	if err != nil {
		return err
	}
	defer d.close()

	fnErr := fn(d)
	if !save {
		return fnErr
	}
	if err := d.finish(); err != nil {
		return err
	}
	return fnErr
}

var wordAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the vocabulary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, true, func(d *deps) error {
			n := d.session.AddWords(strings.Join(args, "\n"))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d new words (%d to see).\n", n, d.session.Remaining())
			return nil
		})
	},
}

var wordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List words by classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		which, _ := cmd.Flags().GetString("list")
		query, _ := cmd.Flags().GetString("search")
		return withSession(cmd, false, func(d *deps) error {
			m := d.model
			var items []string
			switch which {
			case "known":
				items = m.KnownList()
			case "new":
				items = m.NewList()
			case "removed":
				items = m.RemovedList()
			case "user":
				items = m.UserList()
			case "expressions":
				items = m.Expressions
			default:
				return fmt.Errorf("unknown list %q (known, new, removed, user, expressions)", which)
			}
			items = words.Search(items, query)
			out := cmd.OutOrStdout()
			for _, w := range items {
				line := w
				if n := m.NotesFor(w); len(n.Details) > 0 && n.Details[0].Meaning != "" {
					line = fmt.Sprintf("%-24s %s", w, n.Details[0].Meaning)
				}
				fmt.Fprintln(out, line)
			}
			if len(items) == 0 {
				fmt.Fprintln(out, "No words.")
			}
			return nil
		})
	},
}

var wordShowCmd = &cobra.Command{
	Use:   "show <word>",
	Short: "Show a word's state and notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(d *deps) error {
			w := words.Key(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  [%s]\n", w, d.model.State(w))
			n := d.model.NotesFor(w)
			if n.IPA != "" {
				fmt.Fprintf(out, "  /%s/\n", n.IPA)
			}
			if n.TongueTwister {
				fmt.Fprintln(out, "  tongue twister")
			}
			if date, ok := d.model.LearnedLog[w]; ok {
				fmt.Fprintf(out, "  learned %s\n", date)
			}
			for i, det := range n.Details {
				pos := ""
				if len(det.POS) > 0 {
					pos = " (" + strings.Join(det.POS, ", ") + ")"
				}
				fmt.Fprintf(out, "  %d. %s%s\n", i+1, det.Meaning, pos)
				for _, ex := range det.Examples {
					fmt.Fprintf(out, "     - %s\n", ex)
				}
			}
			return nil
		})
	},
}

var wordRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Correct a word's spelling, merging into an existing word if needed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, true, func(d *deps) error {
			got, err := d.session.Rename(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", args[0], got)
			return nil
		})
	},
}

var wordRemoveCmd = &cobra.Command{
	Use:   "remove <word>...",
	Short: "Hide words from every flow",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, true, func(d *deps) error {
			for _, w := range args {
				if d.session.Remove(w) {
					fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", words.Key(w))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped %s\n", w)
				}
			}
			return nil
		})
	},
}

var wordRestoreCmd = &cobra.Command{
	Use:   "restore <word>...",
	Short: "Bring removed words back as new",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, true, func(d *deps) error {
			for _, w := range args {
				if d.session.Restore(w) {
					fmt.Fprintf(cmd.OutOrStdout(), "restored %s\n", words.Key(w))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is not removed\n", w)
				}
			}
			return nil
		})
	},
}

var wordKnownCmd = &cobra.Command{
	Use:   "known <word>...",
	Short: "Mark words as known",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, true, func(d *deps) error {
			for _, w := range args {
				if d.session.MoveToKnown(w) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s → known\n", words.Key(w))
				}
			}
			return nil
		})
	},
}

var wordExpressionCmd = &cobra.Command{
	Use:   "expression <phrase> <meaning> [example]...",
	Short: "Add an expression with one meaning",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, true, func(d *deps) error {
			if err := d.session.AddExpression(args[0], args[1], args[2:]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q\n", strings.TrimSpace(args[0]))
			return nil
		})
	},
}

func init() {
	wordListCmd.Flags().StringP("list", "l", "known", "List to show: known, new, removed, user, expressions")
	wordListCmd.Flags().StringP("search", "s", "", "Only show entries containing this text")

	wordCmd.AddCommand(wordAddCmd)
	wordCmd.AddCommand(wordListCmd)
	wordCmd.AddCommand(wordShowCmd)
	wordCmd.AddCommand(wordRenameCmd)
	wordCmd.AddCommand(wordRemoveCmd)
	wordCmd.AddCommand(wordRestoreCmd)
	wordCmd.AddCommand(wordKnownCmd)
	wordCmd.AddCommand(wordExpressionCmd)
}
