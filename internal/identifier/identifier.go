// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identifier normalizes and validates question-bank identifiers.
// The canonical form is a string of decimal digits with no surrounding
// whitespace; presentation order is ascending numeric, not lexical.
package identifier

import (
	"fmt"
	"sort"
	"strings"
)

// IsValid reports whether s, after trimming, is a non-empty run of decimal
// digits.
func IsValid(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize trims every token, silently drops those that are not pure digit
// runs, deduplicates, and returns the survivors in ascending numeric order.
// Normalizing an already-normalized list returns an equal list.
func Normalize(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	ids := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if !IsValid(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		ids = append(ids, tok)
	}

	SortNumeric(ids)
	return ids
}

// SortNumeric sorts digit strings in ascending numeric order. Comparing by
// length first then lexically is equivalent and avoids integer overflow on
// long identifiers.
func SortNumeric(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
}

// InvalidError reports tokens rejected by Validate.
type InvalidError struct {
	Tokens []string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid identifiers (must be numeric): %s", strings.Join(e.Tokens, ", "))
}

// Validate checks interactively supplied tokens and returns an *InvalidError
// listing every offending token verbatim. Unlike Normalize it never drops
// input silently.
func Validate(tokens []string) error {
	var bad []string
	for _, tok := range tokens {
		if !IsValid(tok) {
			bad = append(bad, tok)
		}
	}
	if len(bad) > 0 {
		return &InvalidError{Tokens: bad}
	}
	return nil
}
