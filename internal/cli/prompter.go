package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"autoclean/internal/classify"
	"autoclean/internal/model"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Prompter implements the interactive prompting interface used for ambiguity
// resolution and run confirmation. It blocks the pipeline while waiting,
// which is intentional: human-in-the-loop gating is simpler than pipelining
// around it.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given reader and writer, defaulting
// to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// SelectCategory asks the user to pick a category for a file that matched
// several. The fallback category and a skip option are always offered.
// Returns classify.Skip when the user skips.
func (p *Prompter) SelectCategory(ctx context.Context, file *model.FileRecord, candidates []string, fallback string) (string, error) {
	fmt.Fprintf(p.writer, "\n%s %s (%s) matches multiple categories:\n",
		FileIcon, file.Name, file.SizeHuman)
	for i, label := range candidates {
		fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, label)
	}
	fmt.Fprintf(p.writer, "  [f] %s\n", fallback)
	fmt.Fprintf(p.writer, "  [s] %s\n", SubtleStyle.Render("Skip this file"))

	for {
		fmt.Fprint(p.writer, FormatPrompt("Choice"))
		line, err := p.readLine(ctx)
		if err != nil {
			return classify.Skip, err
		}

		switch line {
		case "f":
			return fallback, nil
		case "s", "":
			return classify.Skip, nil
		default:
			if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(candidates) {
				return candidates[n-1], nil
			}
			fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf(
				"Please enter 1-%d, f, or s", len(candidates))))
		}
	}
}

// Confirm asks a yes/no question and returns the answer. Empty input means no.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprint(p.writer, FormatPrompt(prompt+" [y/N]"))
	line, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}
	return line == "y" || line == "yes", nil
}

// readLine reads one trimmed, lower-cased line, respecting context
// cancellation. The blocked read goroutine is abandoned on cancel; the
// process is exiting anyway.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	type result struct {
		err  error
		line string
	}
	ch := make(chan result, 1)

	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-ch:
		if res.err != nil && res.line == "" {
			return "", res.err
		}
		return strings.ToLower(strings.TrimSpace(res.line)), nil
	}
}
