package generator

import (
	"errors"
	"unicode/utf8"
)

const (
	MinTopicLength = 3
	MaxTopicLength = 500
)

var (
	ErrMissingField = errors.New("topic and platform are required")
	ErrTopicLength  = errors.New("topic must be between 3 and 500 characters")
)

// Validate checks presence of both fields and the topic length in characters.
// The request is returned untouched; nothing is trimmed.
func Validate(req Request) (Request, error) {
	if req.Topic == "" || req.Platform == "" {
		return Request{}, ErrMissingField
	}
	n := utf8.RuneCountInString(req.Topic)
	if n < MinTopicLength || n > MaxTopicLength {
		return Request{}, ErrTopicLength
	}
	return req, nil
}
