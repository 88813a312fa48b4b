package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoState is returned by Load when no progress file exists yet.
var ErrNoState = errors.New("no prior state")

// ErrorKind classifies a store failure.
type ErrorKind int

const (
	KindLoad ErrorKind = iota + 1
	KindDecode
	KindSchema
	KindSave
	KindBackup
	KindCleanup
)

func (k ErrorKind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindDecode:
		return "decode"
	case KindSchema:
		return "schema"
	case KindSave:
		return "save"
	case KindBackup:
		return "backup"
	case KindCleanup:
		return "cleanup"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a store failure tied to a file.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("progress %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reporter observes failures the store handles itself instead of
// returning them, such as background save errors.
type Reporter interface {
	Report(err *Error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err *Error)

func (f ReporterFunc) Report(err *Error) { f(err) }

// SlogReporter logs reported failures. Schema findings are logged at
// debug level since the document is still loaded.
func SlogReporter(l *slog.Logger) Reporter {
	if l == nil {
		l = slog.Default()
	}
	return ReporterFunc(func(err *Error) {
		level := slog.LevelWarn
		if err.Kind == KindSchema {
			level = slog.LevelDebug
		}
		l.Log(context.Background(), level, "progress store",
			"kind", err.Kind.String(),
			"path", err.Path,
			"err", err.Err,
		)
	})
}
