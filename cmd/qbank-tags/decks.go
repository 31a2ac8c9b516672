// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/qbank-tags/internal/collection"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List the decks in the collection",
	Long:  `Decks lists every deck name in the collection, for use with extract --deck.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := collectionPath(cmd)
		if err != nil {
			return err
		}

		col, err := collection.Open(path)
		if err != nil {
			return err
		}
		defer col.Close()

		names, err := col.DeckNames(context.Background())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	decksCmd.Flags().String("collection", "", "path to the Anki collection file (collection.anki2)")

	rootCmd.AddCommand(decksCmd)
}
