// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CollectionConfig holds settings for the Anki collection resolver.
type CollectionConfig struct {
	// Path is the location of the collection SQLite file
	// (e.g. "~/.local/share/Anki2/User 1/collection.anki2").
	Path string `json:"path" yaml:"path"`
}

// StoreConfig holds settings for the answered-ID store.
type StoreConfig struct {
	// StatePath is the location of the answered-IDs YAML state file.
	// Empty means the default under the user config directory.
	StatePath string `json:"state_path" yaml:"state_path"`

	// BackupDir is the directory holding rotating backups of the state
	// file. Empty means a "backups" directory next to StatePath.
	BackupDir string `json:"backup_dir" yaml:"backup_dir"`

	// MaxBackups caps how many backups are retained (default 10).
	// The oldest entries beyond the cap are deleted on save.
	MaxBackups int `json:"max_backups" yaml:"max_backups"`
}

// Config groups all tool configuration.
type Config struct {
	Collection CollectionConfig `json:"collection" yaml:"collection"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
