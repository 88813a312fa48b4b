package app

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/wordz/internal/progress"
	"github.com/abhisek/wordz/internal/words"
)

// Shutdown flushes m to disk and, when backup is set, snapshots the file.
// Only the save failure is returned; backup failures are logged.
func Shutdown(st *progress.Store, m *words.Model, backup bool, log *slog.Logger) error {
	if st == nil {
		return nil
	}
	if err := st.SaveSync(m); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if !backup {
		return nil
	}
	if path, err := st.BackupIfChanged(); err != nil {
		log.Warn("backup failed", "path", st.Path(), "err", err)
	} else if path != "" {
		log.Info("backup written", "path", path)
	}
	return nil
}
