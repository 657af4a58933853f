package model

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxStatementLength bounds statement content when no limit is configured
const DefaultMaxStatementLength = 10000

// Statement is one logical sentence, reusable across arguments. Content is
// opaque to the decoder: no grammar is applied to the notation inside it.
type Statement struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// NewStatement creates a statement, enforcing non-empty and bounded content.
// maxLength <= 0 selects DefaultMaxStatementLength.
func NewStatement(id, content string, maxLength int) (*Statement, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxStatementLength
	}
	if content == "" {
		return nil, fmt.Errorf("statement content cannot be empty")
	}
	if n := utf8.RuneCountInString(content); n > maxLength {
		return nil, fmt.Errorf("statement content exceeds %d characters (%d)", maxLength, n)
	}
	return &Statement{ID: id, Content: content}, nil
}
