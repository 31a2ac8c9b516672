// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection reads note IDs and tag strings from an Anki collection
// SQLite database. Access is read-only; the tool never mutates a collection.
package collection

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// deckNameSep separates deck path segments in newer collection schemas,
// where "Parent::Child" is stored as "Parent\x1fChild".
const deckNameSep = "\x1f"

// Collection is a read-only handle on an Anki collection database.
type Collection struct {
	db *sql.DB
}

// Open opens the collection file at path read-only. The file must already
// exist; Anki creates it, not this tool.
func Open(path string) (*Collection, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("collection file: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening collection %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening collection %s: %w", path, err)
	}

	return &Collection{db: db}, nil
}

// Close releases the database connection.
func (c *Collection) Close() error {
	return c.db.Close()
}

// ResolveTags returns the tag string of one note. Anki stores tags as a
// single space-separated text column, which is exactly the shape the
// pattern matcher scans.
func (c *Collection) ResolveTags(ctx context.Context, noteID int64) (string, error) {
	var tags string
	err := c.db.QueryRowContext(ctx,
		`SELECT tags FROM notes WHERE id = ?`, noteID,
	).Scan(&tags)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("note %d not found", noteID)
	}
	if err != nil {
		return "", fmt.Errorf("reading note %d: %w", noteID, err)
	}
	return tags, nil
}

// AllNoteIDs returns every note ID in the collection, ascending.
func (c *Collection) AllNoteIDs(ctx context.Context) ([]int64, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

// NoteIDsForDeck returns the IDs of notes with at least one card in the
// named deck or any of its child decks. Deck names are matched after
// normalizing the on-disk separator, so "Parent::Child" works against both
// schema generations.
func (c *Collection) NoteIDsForDeck(ctx context.Context, deck string) ([]int64, error) {
	deckIDs, err := c.deckIDs(ctx, deck)
	if err != nil {
		return nil, err
	}
	if len(deckIDs) == 0 {
		return nil, fmt.Errorf("deck %q not found", deck)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(deckIDs)), ",")
	args := make([]any, len(deckIDs))
	for i, id := range deckIDs {
		args[i] = id
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT DISTINCT nid FROM cards WHERE did IN (`+placeholders+`) ORDER BY nid`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes for deck %q: %w", deck, err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

// DeckNames returns all deck names, normalized to "::" separators, sorted
// by the database's name ordering.
func (c *Collection) DeckNames(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name FROM decks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing decks: %w", err)
		}
		names = append(names, normalizeDeckName(name))
	}
	return names, rows.Err()
}

// deckIDs resolves a deck name to the IDs of that deck and its children.
func (c *Collection) deckIDs(ctx context.Context, deck string) ([]int64, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name FROM decks`)
	if err != nil {
		return nil, fmt.Errorf("reading decks: %w", err)
	}
	defer rows.Close()

	deck = normalizeDeckName(deck)
	var ids []int64
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("reading decks: %w", err)
		}
		name = normalizeDeckName(name)
		if name == deck || strings.HasPrefix(name, deck+"::") {
			ids = append(ids, id)
		}
	}
	return ids, rows.Err()
}

func normalizeDeckName(name string) string {
	return strings.ReplaceAll(name, deckNameSep, "::")
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning note id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
