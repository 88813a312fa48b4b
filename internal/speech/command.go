package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CommandEngine speaks through an external TTS program such as espeak-ng
// and, optionally, transcribes through an external recorder script that
// takes the duration in seconds and prints the text.
type CommandEngine struct {
	TTS   string
	Voice string
	// STT is a command line; the duration is appended as the last
	// argument. Empty disables transcription.
	STT string

	lookPath func(string) (string, error)
}

// NewCommandEngine returns an engine for the given commands.
func NewCommandEngine(tts, voice, stt string) *CommandEngine {
	return &CommandEngine{TTS: tts, Voice: voice, STT: stt, lookPath: exec.LookPath}
}

// Init checks that the programs exist.
func (e *CommandEngine) Init(context.Context) error {
	look := e.lookPath
	if look == nil {
		look = exec.LookPath
	}
	if e.TTS == "" {
		return fmt.Errorf("no TTS command: %w", ErrUnavailable)
	}
	if _, err := look(e.TTS); err != nil {
		return fmt.Errorf("%s: %w", e.TTS, ErrUnavailable)
	}
	if e.STT != "" {
		name := strings.Fields(e.STT)[0]
		if _, err := look(name); err != nil {
			return fmt.Errorf("%s: %w", name, ErrUnavailable)
		}
	}
	return nil
}

// Speak runs the TTS program and waits for it to finish.
func (e *CommandEngine) Speak(ctx context.Context, text string) error {
	var args []string
	if e.Voice != "" {
		args = append(args, "-v", e.Voice)
	}
	args = append(args, text)
	cmd := exec.CommandContext(ctx, e.TTS, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", e.TTS, err, bytes.TrimSpace(out))
	}
	return nil
}

// Transcribe runs the STT command and returns its standard output.
func (e *CommandEngine) Transcribe(ctx context.Context, d time.Duration) (string, error) {
	fields := strings.Fields(e.STT)
	if len(fields) == 0 {
		return "", fmt.Errorf("no STT command: %w", ErrUnavailable)
	}
	secs := strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], secs)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", fields[0], err, bytes.TrimSpace(stderr.Bytes()))
	}
	return strings.TrimSpace(string(out)), nil
}
