package progress

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupIfChanged_NoProgressFile(t *testing.T) {
	s, _ := newTestStore(t, Options{})

	path, err := s.BackupIfChanged()

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NoDirExists(t, s.BackupDir())
}

func TestBackupIfChanged_Suppression(t *testing.T) {
	s, _ := newTestStore(t, Options{})
	m, _ := s.Load()
	m.ClassifyKnown("apple")
	require.NoError(t, s.SaveSync(m))

	first, err := s.BackupIfChanged()
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Regexp(t, regexp.MustCompile(`voca_progress_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.json$`), first)
	assert.Equal(t, filepath.Join(filepath.Dir(s.Path()), "back_ups"), filepath.Dir(first))

	second, err := s.BackupIfChanged()
	require.NoError(t, err)
	assert.Empty(t, second)

	// Display-only changes do not warrant a backup.
	m.PushHistory("banana", 300)
	require.NoError(t, s.SaveSync(m))
	third, err := s.BackupIfChanged()
	require.NoError(t, err)
	assert.Empty(t, third)

	backups, err := s.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	m.ClassifyNew("cherry")
	require.NoError(t, s.SaveSync(m))
	fourth, err := s.BackupIfChanged()
	require.NoError(t, err)
	assert.NotEmpty(t, fourth)
	assert.NotEqual(t, first, fourth)

	backups, err = s.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 2)
}

func TestBackupIfChanged_SameSecondKeepsBoth(t *testing.T) {
	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, Options{Now: func() time.Time { return at }})
	m, _ := s.Load()
	m.ClassifyKnown("apple")
	require.NoError(t, s.SaveSync(m))
	first, err := s.BackupIfChanged()
	require.NoError(t, err)

	m.ClassifyKnown("banana")
	require.NoError(t, s.SaveSync(m))
	second, err := s.BackupIfChanged()
	require.NoError(t, err)

	assert.Equal(t, "voca_progress_2026-05-01_08-00-00.json", filepath.Base(first))
	assert.Equal(t, "voca_progress_2026-05-01_08-00-00_1.json", filepath.Base(second))

	backups, err := s.Backups()
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, first, backups[0].Path)
	assert.Equal(t, second, backups[1].Path)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "banana", "the earlier backup is not overwritten")
}

func TestBackupIfChanged_UnreadableBackupForcesNewOne(t *testing.T) {
	s, rec := newTestStore(t, Options{})
	m, _ := s.Load()
	require.NoError(t, s.SaveSync(m))
	first, err := s.BackupIfChanged()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(first, []byte("garbage"), 0o644))

	second, err := s.BackupIfChanged()

	require.NoError(t, err)
	assert.NotEmpty(t, second)
	assert.Contains(t, rec.kinds(), KindBackup)
}

func TestBackups_IgnoresOtherFiles(t *testing.T) {
	s, _ := newTestStore(t, Options{})
	require.NoError(t, os.MkdirAll(s.BackupDir(), 0o755))
	for _, name := range []string{"other_2026-01-01_00-00-00.json", "voca_progress_x.txt", "voca_progress_2026-01-01_00-00-00.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(s.BackupDir(), name), []byte("{}"), 0o644))
	}

	backups, err := s.Backups()

	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, "voca_progress_2026-01-01_00-00-00.json", filepath.Base(backups[0].Path))
}

func TestRestoreBackup(t *testing.T) {
	s, _ := newTestStore(t, Options{})
	m, _ := s.Load()
	m.ClassifyKnown("apple")
	require.NoError(t, s.SaveSync(m))
	backup, err := s.BackupIfChanged()
	require.NoError(t, err)

	m.Remove("apple")
	require.NoError(t, s.SaveSync(m))

	require.NoError(t, s.RestoreBackup(backup))
	got, err := s.Load()
	require.NoError(t, err)
	assert.True(t, got.Known.Has("apple"))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[]"), 0o644))
	assert.Error(t, s.RestoreBackup(bad))
}
