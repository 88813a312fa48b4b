package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://progress.json"

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var stringToString = map[string]any{
	"type":                 "object",
	"additionalProperties": map[string]any{"type": "string"},
}

// Schema describes a well-formed progress document.
var Schema = map[string]any{
	"type": "object",
	"required": []any{
		"displayed_words", "word_history", "current_word",
		"known_words", "new_words", "known_sequence", "new_sequence",
		"user_words", "removed_words", "learned_words", "learned_log",
		"word_details", "word_ipa", "learn_order_mode",
		"tongue_twisters", "expressions",
	},
	"properties": map[string]any{
		"displayed_words":  stringArray,
		"word_history":     stringArray,
		"current_word":     map[string]any{"type": []any{"string", "null"}},
		"known_words":      stringArray,
		"new_words":        stringArray,
		"known_sequence":   stringArray,
		"new_sequence":     stringArray,
		"user_words":       stringArray,
		"removed_words":    stringArray,
		"learned_words":    stringArray,
		"learned_log":      stringToString,
		"word_ipa":         stringToString,
		"learn_order_mode": map[string]any{"enum": []any{"Random", "Newest", "Oldest"}},
		"tongue_twisters":  stringArray,
		"expressions":      stringArray,
		"word_details": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"meaning":  map[string]any{"type": "string"},
						"examples": stringArray,
						"pos": map[string]any{
							"type":  "array",
							"items": map[string]any{"enum": []any{"n", "v", "adj", "adv", "prep", "conj"}},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, Schema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Check validates an encoded document against Schema. Decode accepts
// documents that fail Check; the result is diagnostic only.
func Check(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	return s.Validate(v)
}
