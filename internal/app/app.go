package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordz/internal/progress"
	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screens/home"
	"github.com/abhisek/wordz/internal/screens/summary"
	"github.com/abhisek/wordz/internal/session"
	"github.com/abhisek/wordz/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Env *screen.Env

	// Progress is saved synchronously when the program exits. Nil skips it.
	Progress *progress.Store

	// BackupOnExit copies the progress file into the backup directory
	// when it differs from the newest backup.
	BackupOnExit bool

	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	env      *screen.Env
	width    int
	height   int
	status   string
	showHelp bool
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(env *screen.Env) AppModel {
	return AppModel{
		router: router.New(home.New(env)),
		env:    env,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.env.Speech != nil {
		m.env.Speech.InitAsync()
	}
	return m.router.Active().Init()
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		if !m.capturing() {
			switch msg.String() {
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			case "q":
				if _, ok := m.router.Active().(*summary.SummaryScreen); !ok {
					return m, router.Push(summary.New(session.BuildSummary(m.env.Session)))
				}
			}
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
	}
}

func (m AppModel) helpView(width, height int) string {
	lines := []string{"Keys", ""}
	for _, h := range m.hints() {
		lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Description))
	}
	lines = append(lines, "", "?        Toggle help", "q        Quit with summary", "Ctrl+C   Quit now")
	return layout.Center(lipgloss.JoinVertical(lipgloss.Left, lines...), width, height)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := m.router.Active().Title()
	sess := m.env.Session
	header := layout.RenderHeader(title, layout.HeaderStats{
		Known:     len(sess.Model.Known),
		New:       len(sess.Model.NewList()),
		Remaining: sess.Remaining(),
	}, m.width)
	footer := layout.RenderFooter(m.hints(), m.status, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	var content string
	if m.showHelp {
		content = m.helpView(m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and saves the model once it exits.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	p := tea.NewProgram(newAppModel(opts.Env))
	_, runErr := p.Run()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", runErr)
	}

	if opts.Env.Speech != nil {
		opts.Env.Speech.Stop()
	}
	if err := Shutdown(opts.Progress, opts.Env.Session.Model, opts.BackupOnExit, log); err != nil {
		if runErr == nil {
			return err
		}
	}
	return runErr
}
