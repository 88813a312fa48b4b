package progress

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/wordz/internal/snapshot"
)

// BackupDirName is the directory, next to the progress file, that holds
// backups.
const BackupDirName = "back_ups"

// BackupTimeLayout is the timestamp embedded in backup file names.
const BackupTimeLayout = "2006-01-02_15-04-05"

// maxBackupSuffix bounds the numbered names tried when several backups
// share a timestamp.
const maxBackupSuffix = 1000

// Backup is one file in the backup directory.
type Backup struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// BackupDir returns the backup directory for this store.
func (s *Store) BackupDir() string {
	return filepath.Join(filepath.Dir(s.path), BackupDirName)
}

func (s *Store) stemExt() (string, string) {
	name := filepath.Base(s.path)
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// Backups lists the backups of this progress file, oldest first.
func (s *Store) Backups() ([]Backup, error) {
	entries, err := os.ReadDir(s.BackupDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	stem, ext := s.stemExt()
	var out []Backup
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, stem+"_") || !strings.HasSuffix(name, ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Backup{
			Path:    filepath.Join(s.BackupDir(), name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	slices.SortFunc(out, func(a, b Backup) int {
		if c := a.ModTime.Compare(b.ModTime); c != 0 {
			return c
		}
		if c := len(a.Path) - len(b.Path); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return out, nil
}

// BackupIfChanged copies the progress file into the backup directory
// unless its relevant fields match the newest backup. It returns the new
// backup's path, or "" when nothing was written. A missing progress file
// is not an error. An unreadable previous backup counts as no backup.
func (s *Store) BackupIfChanged() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", &Error{Kind: KindBackup, Path: s.path, Err: err}
	}
	if err := os.MkdirAll(s.BackupDir(), 0o755); err != nil {
		return "", &Error{Kind: KindBackup, Path: s.BackupDir(), Err: err}
	}

	backups, err := s.Backups()
	if err != nil {
		s.reporter.Report(&Error{Kind: KindBackup, Path: s.BackupDir(), Err: err})
	}
	current, curErr := snapshot.CanonicalSubset(data)
	if curErr == nil && len(backups) > 0 {
		last := backups[len(backups)-1]
		if prev, err := readSubset(last.Path); err != nil {
			s.reporter.Report(&Error{Kind: KindBackup, Path: last.Path, Err: err})
		} else if prev == current {
			return "", nil
		}
	}

	stem, ext := s.stemExt()
	name := stem + "_" + s.now().Format(BackupTimeLayout)
	for n := 0; n < maxBackupSuffix; n++ {
		dst := filepath.Join(s.BackupDir(), name+ext)
		if n > 0 {
			dst = filepath.Join(s.BackupDir(), fmt.Sprintf("%s_%d%s", name, n, ext))
		}
		err := copyFile(s.path, dst)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", &Error{Kind: KindBackup, Path: dst, Err: err}
		}
		return dst, nil
	}
	return "", &Error{Kind: KindBackup, Path: s.BackupDir(), Err: fmt.Errorf("no free backup name for %s", name)}
}

// RestoreBackup replaces the progress file with the backup at path.
func (s *Store) RestoreBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Kind: KindBackup, Path: path, Err: err}
	}
	if _, err := snapshot.Decode(data, nil); err != nil {
		return &Error{Kind: KindDecode, Path: path, Err: err}
	}
	if err := WriteAtomic(s.path, s.TempPath(), data); err != nil {
		return &Error{Kind: KindSave, Path: s.path, Err: err}
	}
	return nil
}

func readSubset(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return snapshot.CanonicalSubset(data)
}

// copyFile copies src to a new file dst and carries over the modification
// time. It fails with fs.ErrExist when dst is already there.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
