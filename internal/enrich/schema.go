package enrich

import (
	"github.com/abhisek/wordz/internal/llm"
	"github.com/abhisek/wordz/internal/words"
)

// NotesSchema is the JSON schema of an enrichment answer.
var NotesSchema = &llm.Schema{
	Name:        "word-notes",
	Description: "Dictionary notes for one English word or phrase",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ipa": map[string]any{
				"type":        "string",
				"description": "IPA transcription without slashes, e.g. ˈæp.əl",
			},
			"details": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 4,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"meaning": map[string]any{
							"type":        "string",
							"description": "One short learner-friendly definition",
						},
						"examples": map[string]any{
							"type":     "array",
							"maxItems": 3,
							"items":    map[string]any{"type": "string"},
						},
						"pos": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string", "enum": posEnum()},
						},
					},
					"required":             []any{"meaning", "examples", "pos"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"ipa", "details"},
		"additionalProperties": false,
	},
}

func posEnum() []any {
	out := make([]any, len(words.POSTags))
	for i, t := range words.POSTags {
		out[i] = t
	}
	return out
}
