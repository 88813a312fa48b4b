package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/textcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|url|-]",
	Short: "List the words of a text that are not in the vocabulary",
	Long:  "Reads a plain text or HTML file, a web page or standard input and prints the words that are neither known, new nor removed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		add, _ := cmd.Flags().GetBool("add")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		text, err := readCheckInput(cmd, args, timeout)
		if err != nil {
			return err
		}

		return withSession(cmd, add, func(d *deps) error {
			r := textcheck.Analyze(d.model, text)
			out := cmd.OutOrStdout()
			for _, w := range r.Unknown {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d words: %d unknown, %d in vocabulary, %d removed\n",
				r.Total(), len(r.Unknown), len(r.Present), len(r.Ignored))
			if add {
				added := d.session.AddUnclassified(r.Unknown)
				fmt.Fprintf(cmd.ErrOrStderr(), "Added %d words.\n", len(added))
			}
			return nil
		})
	},
}

func readCheckInput(cmd *cobra.Command, args []string, timeout time.Duration) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	src := strings.TrimSpace(args[0])
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	text, err := textcheck.Load(ctx, &http.Client{}, src)
	if err != nil {
		return "", err
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "No text found in", src)
	}
	return text, nil
}

func init() {
	checkCmd.Flags().BoolP("add", "a", false, "Add the unknown words to the vocabulary")
	checkCmd.Flags().Duration("timeout", 20*time.Second, "Timeout for fetching URLs")
}
