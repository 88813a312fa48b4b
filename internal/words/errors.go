package words

import "errors"

var (
	// ErrInvalidWord is returned when input sanitizes to nothing.
	ErrInvalidWord = errors.New("invalid word")
	// ErrRemovedWord is returned when an operation targets a removed word.
	ErrRemovedWord = errors.New("word is marked as removed")
	// ErrUnknownWord is returned when a word is not in the vocabulary.
	ErrUnknownWord = errors.New("word not in vocabulary")
	// ErrInvalidExpression is returned for an expression without a phrase
	// or without any meaning and examples.
	ErrInvalidExpression = errors.New("expression needs a phrase and a meaning or example")
)
