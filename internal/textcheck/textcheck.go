// Package textcheck finds the words of a text that are missing from the
// vocabulary.
package textcheck

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/abhisek/wordz/internal/words"
)

// minLen is the shortest token kept; shorter ones are mostly function words.
const minLen = 3

var tokenRe = regexp.MustCompile(`[\p{L}]+(?:['\-][\p{L}]+)*`)

// ExtractWords returns the distinct lowercase words of text in order of
// first appearance.
func ExtractWords(text string) []string {
	text = strings.NewReplacer("’", "'", "‘", "'").Replace(text)
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range tokenRe.FindAllString(text, -1) {
		tok = strings.ToLower(tok)
		if len([]rune(tok)) < minLen {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Report is the outcome of Analyze.
type Report struct {
	// Unknown words are in neither the vocabulary nor the removed set.
	Unknown []string
	// Present words are already in the vocabulary.
	Present []string
	// Ignored words were removed by the user.
	Ignored []string
}

// Total returns the number of distinct words examined.
func (r Report) Total() int {
	return len(r.Unknown) + len(r.Present) + len(r.Ignored)
}

// Analyze splits the words of text by their standing in m.
func Analyze(m *words.Model, text string) Report {
	var r Report
	for _, w := range ExtractWords(text) {
		switch {
		case m.Removed.Has(w):
			r.Ignored = append(r.Ignored, w)
		case m.Contains(w):
			r.Present = append(r.Present, w)
		default:
			r.Unknown = append(r.Unknown, w)
		}
	}
	return r
}

// Article is readable text pulled out of an HTML page.
type Article struct {
	Title string
	Text  string
}

// FromHTML extracts the main article text of an HTML document. pageURL
// resolves relative links and may be nil.
func FromHTML(r io.Reader, pageURL *url.URL) (Article, error) {
	if pageURL == nil {
		pageURL = &url.URL{Scheme: "file", Path: "/"}
	}
	a, err := readability.FromReader(r, pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("extract article: %w", err)
	}
	return Article{Title: a.Title, Text: a.TextContent}, nil
}
