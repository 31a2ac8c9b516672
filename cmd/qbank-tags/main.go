// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the qbank-tags CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qbank-tags/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the qbank-tags CLI.
var rootCmd = &cobra.Command{
	Use:   "qbank-tags",
	Short: "Extract question-bank IDs from Anki card tags",
	Long: `qbank-tags scans the tags of Anki notes for question-bank tag literals
(#AK_Step1/2/3 in their v11 and v12 shapes), collects the question IDs they
carry, and buckets them per step.

IDs you have already worked through can be recorded in a persisted answered
set; extraction then filters them out so only fresh questions surface. Every
change to the answered set is backed up before it is written.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./qbank-tags.yaml or ~/.config/qbank-tags/config.yaml)")
	rootCmd.PersistentFlags().String("state-file", "", "answered-IDs state file (default: ~/.config/qbank-tags/answered.yaml)")
	rootCmd.PersistentFlags().String("backup-dir", "", "backup directory (default: next to the state file)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("qbank-tags")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "qbank-tags"))
		}
	}

	viper.SetEnvPrefix("QBANK_TAGS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// storeConfig resolves the answered-store paths from flags, falling back to
// the config file. Empty values mean the store's own defaults apply.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	statePath, _ := cmd.Flags().GetString("state-file")
	if statePath == "" {
		statePath = viper.GetString("store.state_path")
	}
	backupDir, _ := cmd.Flags().GetString("backup-dir")
	if backupDir == "" {
		backupDir = viper.GetString("store.backup_dir")
	}

	return types.StoreConfig{
		StatePath:  statePath,
		BackupDir:  backupDir,
		MaxBackups: viper.GetInt("store.max_backups"),
	}
}

// collectionPath resolves the collection file from the flag or config file.
func collectionPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("collection")
	if path == "" {
		path = viper.GetString("collection.path")
	}
	if path == "" {
		return "", fmt.Errorf("collection path required: use --collection or set collection.path in the config file")
	}
	return path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
