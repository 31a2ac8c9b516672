// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/qbank-tags/internal/answered"
	"github.com/pdiddy/qbank-tags/internal/identifier"
)

var answeredCmd = &cobra.Command{
	Use:   "answered",
	Short: "Manage the persisted set of answered question IDs",
	Long: `Answered manages the set of question IDs you have already worked
through. IDs in the set are filtered out of extraction results while
filtering is enabled. The set lives in a YAML file; every change first
copies the previous file into a rotating backup directory.`,
}

// --- add subcommand ---

var answeredAddCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Mark question IDs as answered",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnsweredAdd,
}

func runAnsweredAdd(cmd *cobra.Command, args []string) error {
	// IDs typed by hand get validated, not silently dropped.
	if err := identifier.Validate(args); err != nil {
		return err
	}

	store, err := answered.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}

	added, err := store.AddAnswered(args)
	if err != nil {
		return err
	}

	switch added {
	case 0:
		fmt.Println("No new IDs; all were already marked answered.")
	case 1:
		fmt.Println("Added 1 ID to the answered set.")
	default:
		fmt.Printf("Added %d IDs to the answered set.\n", added)
	}
	return nil
}

// --- list subcommand ---

var answeredListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the answered set, one ID per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := answered.NewStore(storeConfig(cmd))
		if err != nil {
			return err
		}
		for _, id := range store.Load().AnsweredIDs {
			fmt.Println(id)
		}
		return nil
	},
}

// --- filter subcommand ---

var answeredFilterCmd = &cobra.Command{
	Use:   "filter on|off",
	Short: "Enable or disable answered-ID filtering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enable bool
		switch strings.ToLower(args[0]) {
		case "on":
			enable = true
		case "off":
			enable = false
		default:
			return fmt.Errorf("unknown setting %q: use on or off", args[0])
		}

		store, err := answered.NewStore(storeConfig(cmd))
		if err != nil {
			return err
		}
		if err := store.SetFilterEnabled(enable); err != nil {
			return err
		}
		if enable {
			fmt.Println("Answered-ID filtering enabled.")
		} else {
			fmt.Println("Answered-ID filtering disabled.")
		}
		return nil
	},
}

// --- status subcommand ---

var answeredStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the answered set size, filter setting, and state file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := answered.NewStore(storeConfig(cmd))
		if err != nil {
			return err
		}
		state := store.Load()

		setting := "on"
		if !state.FilterEnabled {
			setting = "off"
		}
		fmt.Printf("Answered IDs: %d\n", len(state.AnsweredIDs))
		fmt.Printf("Filtering:    %s\n", setting)
		fmt.Printf("State file:   %s\n", store.StatePath())
		return nil
	},
}

func init() {
	answeredCmd.AddCommand(answeredAddCmd)
	answeredCmd.AddCommand(answeredListCmd)
	answeredCmd.AddCommand(answeredFilterCmd)
	answeredCmd.AddCommand(answeredStatusCmd)

	rootCmd.AddCommand(answeredCmd)
}
