package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed starter.json
var starterDictionary []byte

// StarterDictionary returns the bundled base word list.
func StarterDictionary() []string {
	list, err := ParseBaseDictionary(starterDictionary)
	if err != nil {
		panic(fmt.Sprintf("words: bundled dictionary: %v", err))
	}
	return list
}

// LoadBaseDictionary reads a base dictionary file. A missing file yields
// an empty list.
func LoadBaseDictionary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	list, err := ParseBaseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return list, nil
}

// ParseBaseDictionary accepts either a JSON list of strings or an object
// with a "words" list. Non-strings and entries shorter than two
// characters are skipped, case-insensitive duplicates collapse to the
// first spelling, and the result is sorted case-insensitively.
func ParseBaseDictionary(data []byte) ([]string, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		items, _ = v["words"].([]any)
	default:
		return nil, fmt.Errorf("unexpected dictionary shape %T", raw)
	}
	var out []string
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); utf8.RuneCountInString(s) < minWordLen {
			continue
		}
		out = append(out, s)
	}
	out = UniqueFold(out)
	SortFold(out)
	return out, nil
}
