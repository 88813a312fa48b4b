package enrich

import (
	"fmt"
	"strings"

	"github.com/abhisek/wordz/internal/words"
)

const systemPrompt = `You write concise dictionary notes for an English learner.

For the given word or phrase return:
- ipa: a General American IPA transcription without slashes.
- details: one entry per distinct common meaning, most common first. Each has a short
  definition, up to three natural example sentences using the word, and part-of-speech
  tags from: n, v, adj, adv, prep, conj.

Do not invent rare or archaic senses. Keep definitions under 15 words.`

// buildPrompt renders the user message. Existing meanings are listed so the
// model adds new senses instead of repeating them.
func buildPrompt(word string, existing words.Notes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word: %s\n", word)
	if len(existing.Details) > 0 {
		b.WriteString("\nAlready recorded meanings (do not repeat):\n")
		for _, d := range existing.Details {
			fmt.Fprintf(&b, "- %s\n", d.Meaning)
		}
	}
	return b.String()
}
