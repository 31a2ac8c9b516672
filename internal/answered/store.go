// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answered persists the set of question identifiers the user has
// already marked as handled, plus the flag controlling whether extraction
// results are filtered against that set.
//
// State lives in a single YAML file. Every save first copies the previous
// file into a rotating backup directory, so a bad write or an accidental
// bulk add can be undone by hand.
package answered

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/qbank-tags/internal/identifier"
	"github.com/pdiddy/qbank-tags/pkg/types"
)

const (
	defaultMaxBackups = 10
	stateFileName     = "answered.yaml"
	backupDirName     = "backups"
)

// State is the persisted answered-ID record.
type State struct {
	// AnsweredIDs holds the identifiers the user has marked answered,
	// digits-only, numerically sorted.
	AnsweredIDs []string `yaml:"answered_ids"`

	// FilterEnabled controls whether extraction results are filtered
	// against AnsweredIDs. Defaults to true.
	FilterEnabled bool `yaml:"filter_enabled"`
}

// stateDoc is the on-disk shape. FilterEnabled is a pointer so an absent
// field decodes as "use the default" rather than false.
type stateDoc struct {
	AnsweredIDs   []string `yaml:"answered_ids"`
	FilterEnabled *bool    `yaml:"filter_enabled"`
}

// Store reads and writes the answered-ID state file. Each operation loads
// the file fresh; no in-memory copy is trusted across calls, since the file
// may be edited externally between invocations.
type Store struct {
	statePath  string
	backupDir  string
	maxBackups int
}

// NewStore resolves paths from cfg and returns a Store. Empty paths fall
// back to the user config directory (<config>/qbank-tags/answered.yaml with
// a sibling backups/ directory).
func NewStore(cfg types.StoreConfig) (*Store, error) {
	statePath := cfg.StatePath
	if statePath == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving state path: %w", err)
		}
		statePath = filepath.Join(base, "qbank-tags", stateFileName)
	}

	backupDir := cfg.BackupDir
	if backupDir == "" {
		backupDir = filepath.Join(filepath.Dir(statePath), backupDirName)
	}

	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}

	return &Store{
		statePath:  statePath,
		backupDir:  backupDir,
		maxBackups: maxBackups,
	}, nil
}

// StatePath returns the resolved location of the state file.
func (s *Store) StatePath() string { return s.statePath }

// Load reads the state file. A missing or unparseable file yields the
// default state (empty set, filtering enabled) rather than an error; the
// answered set is re-normalized on every load.
func (s *Store) Load() State {
	st := State{FilterEnabled: true}

	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", s.statePath, err)
		}
		st.AnsweredIDs = []string{}
		return st
	}

	var doc stateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not parse %s, using defaults: %v\n", s.statePath, err)
		st.AnsweredIDs = []string{}
		return st
	}

	st.AnsweredIDs = identifier.Normalize(doc.AnsweredIDs)
	if doc.FilterEnabled != nil {
		st.FilterEnabled = *doc.FilterEnabled
	}
	return st
}

// Save writes st to the state file. The previous file, if any, is first
// copied into the backup directory and the retention cap enforced; failures
// there are warnings only. The write itself goes through a temp file and
// rename so a failed save never leaves a truncated state file behind.
func (s *Store) Save(st State) error {
	if err := s.backupCurrent(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: backup failed: %v\n", err)
	}
	if err := s.pruneBackups(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: backup cleanup failed: %v\n", err)
	}

	doc := stateDoc{
		AnsweredIDs:   identifier.Normalize(st.AnsweredIDs),
		FilterEnabled: &st.FilterEnabled,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.statePath), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.statePath), ".answered-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing state: %w", err)
	}

	if err := os.Rename(tmpPath, s.statePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

// AddAnswered normalizes ids, merges them into the stored set, persists, and
// returns how many identifiers were actually new. Invalid tokens in bulk
// input are dropped silently; interactive callers should run
// identifier.Validate first.
func (s *Store) AddAnswered(ids []string) (int, error) {
	incoming := identifier.Normalize(ids)
	if len(incoming) == 0 {
		return 0, nil
	}

	st := s.Load()
	before := len(st.AnsweredIDs)

	merged := identifier.Normalize(append(st.AnsweredIDs, incoming...))
	if len(merged) == before {
		// Nothing new; skip the backup-and-write cycle entirely.
		return 0, nil
	}

	st.AnsweredIDs = merged
	if err := s.Save(st); err != nil {
		return 0, err
	}
	return len(merged) - before, nil
}

// FilterEnabled reports the persisted filter flag.
func (s *Store) FilterEnabled() bool {
	return s.Load().FilterEnabled
}

// SetFilterEnabled persists the filter flag.
func (s *Store) SetFilterEnabled(enabled bool) error {
	st := s.Load()
	if st.FilterEnabled == enabled {
		return nil
	}
	st.FilterEnabled = enabled
	return s.Save(st)
}
