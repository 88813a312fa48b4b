package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RelevantKeys are the fields whose change warrants a new backup. Display
// and history fields are left out on purpose.
var RelevantKeys = []string{
	"user_words", "removed_words",
	"known_words", "new_words",
	"known_sequence", "new_sequence",
	"learned_words", "learned_log",
	"word_details", "word_ipa",
	"learn_order_mode", "tongue_twisters",
	"expressions",
}

// CanonicalSubset renders the relevant fields of an encoded document as
// compact JSON with sorted keys at every level. Missing fields render as
// null.
func CanonicalSubset(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}
	sub := make(map[string]any, len(RelevantKeys))
	for _, k := range RelevantKeys {
		sub[k] = obj[k]
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sub); err != nil {
		return "", fmt.Errorf("encode subset: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

