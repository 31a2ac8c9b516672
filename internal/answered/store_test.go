// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answered

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/qbank-tags/pkg/types"
)

// testStore returns a Store rooted in a fresh temp directory.
func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(types.StoreConfig{
		StatePath: filepath.Join(dir, "answered.yaml"),
		BackupDir: filepath.Join(dir, "backups"),
	})
	require.NoError(t, err)
	return s
}

// tickingClock makes each save produce a distinct backup timestamp.
func tickingClock(t *testing.T) {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}
	t.Cleanup(func() { now = time.Now })
}

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty = no file written
	}{
		{name: "missing file"},
		{name: "corrupt file", content: "{{{not yaml"},
		{name: "wrong field type", content: "answered_ids: 7\nfilter_enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			if tt.content != "" {
				require.NoError(t, os.MkdirAll(filepath.Dir(s.statePath), 0o755))
				require.NoError(t, os.WriteFile(s.statePath, []byte(tt.content), 0o644))
			}

			st := s.Load()
			assert.Empty(t, st.AnsweredIDs)
			assert.True(t, st.FilterEnabled)
		})
	}
}

func TestLoadNormalizes(t *testing.T) {
	s := testStore(t)
	content := "answered_ids: [\"10\", \" 2 \", \"2\", \"1\", \"12a\", \"\"]\n"
	require.NoError(t, os.WriteFile(s.statePath, []byte(content), 0o644))

	st := s.Load()
	assert.Equal(t, []string{"1", "2", "10"}, st.AnsweredIDs)
	assert.True(t, st.FilterEnabled, "absent flag defaults to true")
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	s := testStore(t)
	content := "answered_ids: [\"3\"]\nfilter_enabled: false\nfuture_field: whatever\n"
	require.NoError(t, os.WriteFile(s.statePath, []byte(content), 0o644))

	st := s.Load()
	assert.Equal(t, []string{"3"}, st.AnsweredIDs)
	assert.False(t, st.FilterEnabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tickingClock(t)
	s := testStore(t)

	require.NoError(t, s.Save(State{
		AnsweredIDs:   []string{"30", "4", "100"},
		FilterEnabled: false,
	}))

	st := s.Load()
	assert.Equal(t, []string{"4", "30", "100"}, st.AnsweredIDs)
	assert.False(t, st.FilterEnabled)

	// save(load()) leaves the content unchanged.
	require.NoError(t, s.Save(st))
	assert.Equal(t, st, s.Load())
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	tickingClock(t)
	s := testStore(t)
	require.NoError(t, s.Save(State{AnsweredIDs: []string{"1"}, FilterEnabled: true}))

	entries, err := os.ReadDir(filepath.Dir(s.statePath))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".answered-"),
			"leftover temp file %s", e.Name())
	}
}

func TestAddAnswered(t *testing.T) {
	tickingClock(t)
	s := testStore(t)

	added, err := s.AddAnswered([]string{"2", "10", "1"})
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	assert.Equal(t, []string{"1", "2", "10"}, s.Load().AnsweredIDs)

	// Overlapping add only counts the new identifier.
	added, err = s.AddAnswered([]string{"10", "11"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"1", "2", "10", "11"}, s.Load().AnsweredIDs)
}

func TestAddAnsweredAllDuplicates(t *testing.T) {
	tickingClock(t)
	s := testStore(t)
	_, err := s.AddAnswered([]string{"1", "2"})
	require.NoError(t, err)

	before, err := os.ReadFile(s.statePath)
	require.NoError(t, err)

	added, err := s.AddAnswered([]string{"2", "1", " 1 "})
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	after, err := os.ReadFile(s.statePath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "store content must be unchanged")
}

func TestAddAnsweredDropsInvalidTokens(t *testing.T) {
	tickingClock(t)
	s := testStore(t)

	added, err := s.AddAnswered([]string{"12a", "", "  ", "7"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"7"}, s.Load().AnsweredIDs)
}

func TestFilterToggle(t *testing.T) {
	tickingClock(t)
	s := testStore(t)

	assert.True(t, s.FilterEnabled(), "default is enabled")

	require.NoError(t, s.SetFilterEnabled(false))
	assert.False(t, s.FilterEnabled())

	// Survives a fresh store over the same path.
	s2, err := NewStore(types.StoreConfig{StatePath: s.statePath, BackupDir: s.backupDir})
	require.NoError(t, err)
	assert.False(t, s2.FilterEnabled())

	require.NoError(t, s2.SetFilterEnabled(true))
	assert.True(t, s.FilterEnabled())
}

func TestBackupRetention(t *testing.T) {
	tickingClock(t)
	s := testStore(t)

	// 13 saves: the first has nothing to back up, so 12 backups are
	// written and the two oldest pruned.
	for i := 0; i < 13; i++ {
		require.NoError(t, s.Save(State{
			AnsweredIDs:   []string{"1"},
			FilterEnabled: true,
		}))
	}

	entries, err := os.ReadDir(s.backupDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Len(t, names, 10, "retention cap is 10")

	// ReadDir returns sorted names; the survivors are the 10 newest
	// timestamps, ending at the time of the 12th backup.
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "answered_backup_"), name)
		assert.True(t, strings.HasSuffix(name, ".yaml"), name)
	}
	assert.Equal(t, "answered_backup_2026-01-02-030403.yaml", names[0])
	assert.Equal(t, "answered_backup_2026-01-02-030412.yaml", names[len(names)-1])
}

func TestBackupPreservesPreviousContent(t *testing.T) {
	tickingClock(t)
	s := testStore(t)

	require.NoError(t, s.Save(State{AnsweredIDs: []string{"111"}, FilterEnabled: true}))
	require.NoError(t, s.Save(State{AnsweredIDs: []string{"222"}, FilterEnabled: true}))

	entries, err := os.ReadDir(s.backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(s.backupDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "111", "backup holds the pre-save content")
}

func TestNewStoreDefaultsMaxBackups(t *testing.T) {
	s, err := NewStore(types.StoreConfig{
		StatePath: filepath.Join(t.TempDir(), "answered.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, s.maxBackups)
	assert.Equal(t, filepath.Join(filepath.Dir(s.statePath), "backups"), s.backupDir)
}
