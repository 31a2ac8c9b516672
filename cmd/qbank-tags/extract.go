// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/qbank-tags/internal/answered"
	"github.com/pdiddy/qbank-tags/internal/collection"
	"github.com/pdiddy/qbank-tags/internal/extract"
	"github.com/pdiddy/qbank-tags/internal/filter"
	"github.com/pdiddy/qbank-tags/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract question-bank IDs from note tags",
	Long: `Extract scans note tags for question-bank tag literals and prints the
question IDs found, bucketed per step and sorted numerically.

With --deck the scan covers the named deck and its child decks; otherwise it
covers the whole collection. IDs already in the answered set are filtered
out unless filtering is disabled (--no-filter, or persistently via
"answered filter off").`,
	RunE: runExtract,
}

// categoryReport is one step bucket of the extraction output.
type categoryReport struct {
	Category    types.Category `json:"category"`
	IDs         []string       `json:"ids"`
	Count       int            `json:"count"`
	FilteredOut int            `json:"filtered_out"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, err := collectionPath(cmd)
	if err != nil {
		return err
	}

	col, err := collection.Open(path)
	if err != nil {
		return err
	}
	defer col.Close()

	ctx := context.Background()
	deck, _ := cmd.Flags().GetString("deck")

	var noteIDs []int64
	var source string
	if deck != "" {
		noteIDs, err = col.NoteIDsForDeck(ctx, deck)
		source = fmt.Sprintf("deck %q", deck)
	} else {
		noteIDs, err = col.AllNoteIDs(ctx)
		source = "whole collection"
	}
	if err != nil {
		return err
	}

	result, err := extract.Extract(ctx, col, noteIDs, os.Stderr)
	if err == extract.ErrNoNotes {
		fmt.Printf("No notes found in %s.\n", source)
		return nil
	}
	if err != nil {
		return err
	}

	// The answered store is consulted only once notes were actually
	// processed.
	store, err := answered.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	state := store.Load()

	noFilter, _ := cmd.Flags().GetBool("no-filter")
	enabled := state.FilterEnabled && !noFilter

	reports := make([]categoryReport, 0, len(types.Categories))
	for _, c := range types.Categories {
		final, removed := filter.Apply(result.IDs[c], state.AnsweredIDs, enabled)
		if final == nil {
			final = []string{}
		}
		reports = append(reports, categoryReport{
			Category:    c,
			IDs:         final,
			Count:       len(final),
			FilteredOut: removed,
		})
	}

	if csvCategory, _ := cmd.Flags().GetString("csv"); csvCategory != "" {
		return printCSV(reports, types.Category(csvCategory))
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(source, result, reports)
	}
	printReport(source, result, reports, enabled)
	return nil
}

// printCSV prints one category's IDs comma-joined, ready for pasting into a
// question-bank search box.
func printCSV(reports []categoryReport, category types.Category) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category %q: use step1, step2, or step3", category)
	}
	for _, r := range reports {
		if r.Category == category {
			fmt.Println(strings.Join(r.IDs, ","))
			return nil
		}
	}
	return nil
}

func printJSON(source string, result *extract.Result, reports []categoryReport) error {
	out := struct {
		Source     string           `json:"source"`
		Processed  int              `json:"processed"`
		Failed     int              `json:"failed"`
		Categories []categoryReport `json:"categories"`
	}{
		Source:     source,
		Processed:  result.Processed,
		Failed:     result.Failed,
		Categories: reports,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printReport(source string, result *extract.Result, reports []categoryReport, enabled bool) {
	fmt.Printf("Source: %s (%d notes", source, result.Processed)
	if result.Failed > 0 {
		fmt.Printf(", %d skipped", result.Failed)
	}
	fmt.Println(")")

	labels := map[types.Category]string{
		types.Step1: "Step 1",
		types.Step2: "Step 2",
		types.Step3: "Step 3",
	}

	for _, r := range reports {
		fmt.Printf("\n%s: %d question(s)", labels[r.Category], r.Count)
		if r.FilteredOut > 0 {
			fmt.Printf(" (%d answered, filtered out)", r.FilteredOut)
		}
		fmt.Println()
		if r.Count > 0 {
			fmt.Printf("  %s\n", strings.Join(r.IDs, ", "))
		}
	}

	if !enabled {
		fmt.Println("\nAnswered-ID filtering is off.")
	}
}

func init() {
	extractCmd.Flags().String("collection", "", "path to the Anki collection file (collection.anki2)")
	extractCmd.Flags().String("deck", "", "limit extraction to this deck and its children")
	extractCmd.Flags().Bool("no-filter", false, "skip answered-ID filtering for this run")
	extractCmd.Flags().Bool("json", false, "output results as JSON")
	extractCmd.Flags().String("csv", "", "print one category's IDs comma-joined: step1, step2, or step3")

	rootCmd.AddCommand(extractCmd)
}
