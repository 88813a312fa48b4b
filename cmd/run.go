package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/app"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/speech"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive trainer (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := setup(cmd, setupOpts{tui: true, llm: true})
	if err != nil {
		return err
	}
	defer d.close()

	env := &screen.Env{
		Session: d.session,
		Enrich:  d.enrichService(),
	}
	if d.events != nil {
		env.Events = d.events
	}
	if !env.Enrich.Enabled() {
		fmt.Fprintln(os.Stderr, "LLM provider not configured; suggestions will be unavailable.")
	}
	if sc := d.cfg.Speech; sc.Command != "" {
		env.Speech = speech.NewService(speech.NewCommandEngine(sc.Command, sc.Voice, sc.STT), d.log)
	}

	d.log.Info("session started", "session", d.session.ID, "words", d.model.Size(), "progress", d.progress.Path())
	return app.Run(app.Options{
		Env:          env,
		Progress:     d.progress,
		BackupOnExit: d.cfg.Save.BackupOnExit,
		Logger:       d.log,
	})
}
