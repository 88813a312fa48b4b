package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/app"
	"github.com/abhisek/wordz/internal/config"
	"github.com/abhisek/wordz/internal/enrich"
	"github.com/abhisek/wordz/internal/llm"
	"github.com/abhisek/wordz/internal/progress"
	"github.com/abhisek/wordz/internal/session"
	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/words"
)

// deps bundles everything a command may need. events and provider are nil
// when the activity log or the LLM are unavailable.
type deps struct {
	cfg      *config.Config
	log      *slog.Logger
	logFile  *os.File
	progress *progress.Store
	model    *words.Model
	db       *store.Store
	events   store.EventRepo
	session  *session.Session
	provider llm.Provider
}

type setupOpts struct {
	// tui routes logs to the log file instead of stderr.
	tui bool
	// llm builds the LLM provider.
	llm bool
}

// loadConfig reads the config file and applies the path flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("progress"); p != "" {
		cfg.Paths.Progress = p
	}
	if p, _ := cmd.Flags().GetString("dict"); p != "" {
		cfg.Paths.Dictionary = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Paths.DB = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path from flags and config, then the
// default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Paths.DB != "" {
		return cfg.Paths.DB, store.EnsureDir(cfg.Paths.DB)
	}
	return store.DefaultDBPath()
}

func resolveProgressPath(cfg *config.Config) (string, error) {
	if cfg.Paths.Progress != "" {
		return cfg.Paths.Progress, os.MkdirAll(filepath.Dir(cfg.Paths.Progress), 0o755)
	}
	return progress.DefaultPath()
}

func loadDictionary(cfg *config.Config) ([]string, error) {
	if cfg.Paths.Dictionary == "" {
		return words.StarterDictionary(), nil
	}
	return words.LoadBaseDictionary(cfg.Paths.Dictionary)
}

func setup(cmd *cobra.Command, o setupOpts) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg}

	var logOut io.Writer = os.Stderr
	if o.tui {
		path := cfg.Paths.Log
		if path == "" {
			path, err = config.DefaultLogPath()
		}
		if err == nil {
			d.logFile, err = app.OpenLogFile(path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Log file unavailable:", err)
			logOut = io.Discard
		} else {
			logOut = d.logFile
		}
	}
	d.log = app.NewLogger(cfg.Log, logOut)

	base, err := loadDictionary(cfg)
	if err != nil {
		d.close()
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	progressPath, err := resolveProgressPath(cfg)
	if err != nil {
		d.close()
		return nil, fmt.Errorf("resolve progress path: %w", err)
	}
	d.progress = progress.New(progressPath, base, progress.Options{
		Debounce: cfg.Save.Debounce,
		Reporter: progress.SlogReporter(d.log),
	})
	d.model, err = d.progress.Load()
	switch {
	case errors.Is(err, progress.ErrNoState):
		d.log.Debug("starting with a fresh vocabulary", "path", progressPath)
	case err != nil:
		d.log.Warn("progress file unusable, starting fresh", "path", progressPath, "err", err)
	}

	// The activity log is best effort.
	if dbPath, err := resolveDBPath(cfg); err != nil {
		d.log.Warn("activity log unavailable", "err", err)
	} else if st, err := store.Open(dbPath); err != nil {
		d.log.Warn("activity log unavailable", "path", dbPath, "err", err)
	} else {
		d.db = st
		d.events = st.EventRepo()
	}

	sopts := session.Options{
		Saver:         d.progress,
		MaxHistory:    cfg.Session.MaxHistory,
		AutoMarkKnown: cfg.Session.AutoMarkKnown,
		Logger:        d.log,
	}
	if d.events != nil {
		sopts.Events = d.events
	}
	d.session = session.New(d.model, sopts)

	if o.llm {
		d.provider = d.newProvider(cmd.Context())
	}
	return d, nil
}

func (d *deps) newProvider(ctx context.Context) llm.Provider {
	if ctx == nil {
		ctx = context.Background()
	}
	lc := d.cfg.LLM.Config()
	if !lc.Discover() {
		return nil
	}
	if err := lc.Validate(); err != nil {
		d.log.Warn("LLM provider not configured", "err", err)
		return nil
	}
	var rec llm.Recorder
	if d.events != nil {
		rec = d.events
	}
	p, err := llm.New(ctx, lc, rec, d.log)
	if err != nil {
		d.log.Warn("LLM provider not configured", "err", err)
		return nil
	}
	return p
}

// enrichService returns the enrichment service. It is disabled when no
// provider is configured.
func (d *deps) enrichService() *enrich.Service {
	return enrich.NewService(d.provider, enrich.DefaultConfig())
}

// finish saves the model and writes a backup when it changed.
func (d *deps) finish() error {
	return app.Shutdown(d.progress, d.model, d.cfg.Save.BackupOnExit, d.log)
}

func (d *deps) close() {
	if d.db != nil {
		d.db.Close()
	}
	if d.logFile != nil {
		d.logFile.Close()
	}
}
