package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/enrich"
	"github.com/abhisek/wordz/internal/words"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <word>...",
	Short: "Ask the LLM for meanings, examples and IPA",
	Long:  "Fills in notes for the given words, or with --missing for every known or new word without notes. Existing notes are only added to.",
	RunE: func(cmd *cobra.Command, args []string) error {
		missing, _ := cmd.Flags().GetBool("missing")
		limit, _ := cmd.Flags().GetInt("limit")
		dry, _ := cmd.Flags().GetBool("dry-run")
		if len(args) == 0 && !missing {
			return fmt.Errorf("name at least one word or pass --missing")
		}

		d, err := setup(cmd, setupOpts{llm: true})
		if err != nil {
			return err
		}
		defer d.close()

		svc := d.enrichService()
		if !svc.Enabled() {
			return enrich.ErrNoProvider
		}

		targets := args
		if missing {
			targets = withoutNotes(d.model, limit)
		}

		out := cmd.OutOrStdout()
		var stored int
		for _, w := range targets {
			notes, err := svc.Enrich(cmd.Context(), w, d.model.NotesFor(w))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", w, err)
				continue
			}
			fmt.Fprintf(out, "%s /%s/\n", words.Key(w), notes.IPA)
			for _, det := range notes.Details {
				fmt.Fprintf(out, "  - %s (%s)\n", det.Meaning, strings.Join(det.POS, ", "))
			}
			if !dry && d.session.ApplyEnrichment(w, notes) {
				stored++
			}
		}
		if dry {
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Updated %d of %d words.\n", stored, len(targets))
		return d.finish()
	},
}

// withoutNotes returns up to limit classified words that have no details.
func withoutNotes(m *words.Model, limit int) []string {
	var out []string
	for _, list := range [][]string{m.NewList(), m.KnownList()} {
		for _, w := range list {
			if limit > 0 && len(out) >= limit {
				return out
			}
			if len(m.NotesFor(w).Details) == 0 {
				out = append(out, w)
			}
		}
	}
	return out
}

func init() {
	enrichCmd.Flags().Bool("missing", false, "Enrich classified words that have no notes")
	enrichCmd.Flags().IntP("limit", "n", 10, "Maximum words with --missing (0 = no limit)")
	enrichCmd.Flags().Bool("dry-run", false, "Print suggestions without storing them")
}
