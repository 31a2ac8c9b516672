// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answered

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	backupPrefix = "answered_backup_"
	backupSuffix = ".yaml"

	// backupTimeLayout sorts lexically in chronological order, which is
	// what pruneBackups relies on.
	backupTimeLayout = "2006-01-02-150405"
)

// now is a package-level var so tests can drive the backup clock.
var now = time.Now

// backupCurrent copies the existing state file into the backup directory
// under a timestamped name. A missing state file means there is nothing to
// back up and is not an error.
func (s *Store) backupCurrent() error {
	src, err := os.Open(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening state file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}

	name := backupPrefix + now().Format(backupTimeLayout) + backupSuffix
	dst, err := os.Create(filepath.Join(s.backupDir, name))
	if err != nil {
		return fmt.Errorf("creating backup %s: %w", name, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("writing backup %s: %w", name, err)
	}
	return dst.Close()
}

// pruneBackups deletes the oldest backups beyond the retention cap. Backup
// names embed a sortable timestamp, so a plain name sort is chronological.
func (s *Store) pruneBackups() error {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading backup directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		names = append(names, name)
	}

	if len(names) <= s.maxBackups {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-s.maxBackups] {
		if err := os.Remove(filepath.Join(s.backupDir, name)); err != nil {
			return fmt.Errorf("removing old backup %s: %w", name, err)
		}
	}
	return nil
}
