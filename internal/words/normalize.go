package words

import (
	"regexp"
	"strings"
)

const minWordLen = 2

var (
	bulletRe     = regexp.MustCompile(`^[\s\-*•]+`)
	nonWordRe    = regexp.MustCompile(`[^A-Za-z'\s-]`)
	hyphenGapRe  = regexp.MustCompile(`\s*-\s*`)
	hyphenRunRe  = regexp.MustCompile(`-{2,}`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	tokenSplitRe = regexp.MustCompile(`[,\s/]+`)
)

var quoteReplacer = strings.NewReplacer("’", "'", "‘", "'")

var dashReplacer = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"–", "-",
	"—", "-",
)

// edgePunct is trimmed from both ends of a sanitized word.
const edgePunct = ` .,:;!?"'()[]{}`

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(raw, "\n")
}

// NormalizeLine turns one line of pasted text into a candidate word.
// Bullet markers and characters other than ASCII letters, apostrophes,
// hyphens and spaces are dropped. The result is lowercased, or empty when
// shorter than two characters.
func NormalizeLine(line string) string {
	s := bulletRe.ReplaceAllString(line, "")
	s = quoteReplacer.Replace(s)
	s = nonWordRe.ReplaceAllString(s, "")
	s = hyphenGapRe.ReplaceAllString(s, "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
	if len(s) < minWordLen {
		return ""
	}
	return strings.ToLower(s)
}

// SanitizeWord reduces user input to a single word token. It returns
// ErrInvalidWord when nothing usable remains.
func SanitizeWord(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "- ")
	s = dashReplacer.Replace(s)
	s = strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
	if s == "" {
		return "", ErrInvalidWord
	}
	s = tokenSplitRe.Split(s, 2)[0]
	s = strings.Trim(s, edgePunct)
	if s == "" {
		return "", ErrInvalidWord
	}
	return s, nil
}
