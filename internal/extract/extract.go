// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract walks a batch of note IDs, resolves each note's tag
// string, and collects the question-bank identifiers found per step
// category.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/qbank-tags/internal/identifier"
	"github.com/pdiddy/qbank-tags/internal/pattern"
	"github.com/pdiddy/qbank-tags/pkg/types"
)

// ErrNoNotes signals that the input batch was empty. Callers can tell this
// apart from a batch that processed fine but matched nothing.
var ErrNoNotes = errors.New("no notes to process")

// TagResolver maps a note ID to its tag string. Resolution may fail for an
// individual note (e.g. the note was deleted between listing and lookup).
type TagResolver interface {
	ResolveTags(ctx context.Context, noteID int64) (string, error)
}

// Result holds the raw extraction output for one batch.
type Result struct {
	// IDs maps each category to its identifiers, deduplicated across
	// notes and sorted in ascending numeric order.
	IDs map[types.Category][]string

	// Processed counts notes whose tags were resolved and scanned.
	Processed int

	// Failed counts notes skipped because resolution failed.
	Failed int
}

// Total returns the number of identifiers found across all categories.
// An identifier tagged under two categories counts once per category.
func (r *Result) Total() int {
	n := 0
	for _, ids := range r.IDs {
		n += len(ids)
	}
	return n
}

// Extract resolves every note in noteIDs and matches its tags against all
// categories. A note that fails to resolve is reported to w and skipped;
// one bad note never aborts the batch. An empty batch returns ErrNoNotes
// before any other work happens.
func Extract(ctx context.Context, resolver TagResolver, noteIDs []int64, w io.Writer) (*Result, error) {
	if len(noteIDs) == 0 {
		return nil, ErrNoNotes
	}

	seen := make(map[types.Category]map[string]bool, len(types.Categories))
	result := &Result{IDs: make(map[types.Category][]string, len(types.Categories))}
	for _, c := range types.Categories {
		seen[c] = make(map[string]bool)
	}

	for _, noteID := range noteIDs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tags, err := resolver.ResolveTags(ctx, noteID)
		if err != nil {
			fmt.Fprintf(w, "skipped note %d: %v\n", noteID, err)
			result.Failed++
			continue
		}
		result.Processed++

		for _, c := range types.Categories {
			for _, id := range pattern.Match(c, tags) {
				if seen[c][id] {
					continue
				}
				seen[c][id] = true
				result.IDs[c] = append(result.IDs[c], id)
			}
		}
	}

	for _, c := range types.Categories {
		identifier.SortNumeric(result.IDs[c])
	}

	return result, nil
}
