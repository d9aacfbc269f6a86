// Package console implements the line-based prompts of the interactive session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/okian/bikeshare/pkg/logger"
)

// Question describes one prompt and the answers it accepts.
type Question struct {
	Field    string   // short name used in logs and metrics
	Prompt   string   // printed before every attempt
	Invalid  string   // printed after every rejected attempt
	Valid    []string // accepted answers; lower-case when FoldCase is set
	FoldCase bool     // compare case-insensitively and return the lower-cased answer
}

// Prompter asks questions over a reader/writer pair.
type Prompter struct {
	in        *lineReader
	out       io.Writer
	logger    logger.Logger
	onInvalid func(field string)
}

// NewPrompter creates a Prompter on stdin/stdout unless overridden.
func NewPrompter(opts ...Option) *Prompter {
	p := &Prompter{
		in:        newLineReader(os.Stdin),
		out:       os.Stdout,
		logger:    logger.Discard(),
		onInvalid: func(string) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Out returns the writer prompts are printed to.
func (p *Prompter) Out() io.Writer { return p.out }

// Ask prints q.Prompt and reads answers until one is in q.Valid. Rejected
// answers print q.Invalid and the same prompt again, with no limit on
// attempts. It returns ErrInputClosed if the input ends first.
func (p *Prompter) Ask(ctx context.Context, q Question) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := io.WriteString(p.out, q.Prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}

		line, err := p.in.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w while asking for %s", ErrInputClosed, q.Field)
			}
			return "", fmt.Errorf("read answer: %w", err)
		}

		answer := strings.TrimSpace(line)
		if q.FoldCase {
			answer = strings.ToLower(answer)
		}
		if slices.Contains(q.Valid, answer) {
			return answer, nil
		}

		p.onInvalid(q.Field)
		p.logger.Debug(ctx, "rejected answer", logger.String("field", q.Field), logger.String("answer", answer))
		if _, err := fmt.Fprintln(p.out, q.Invalid); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
}

// Yes/no answers.
const (
	Yes = "yes"
	No  = "no"
)

// AskYesNo asks a yes/no question and reports whether the answer was yes.
func (p *Prompter) AskYesNo(ctx context.Context, field, prompt string) (bool, error) {
	answer, err := p.Ask(ctx, Question{
		Field:    field,
		Prompt:   prompt,
		Invalid:  "Invalid input. Please try again.",
		Valid:    []string{Yes, No},
		FoldCase: true,
	})
	if err != nil {
		return false, err
	}
	return answer == Yes, nil
}

// lineReader returns one line per call, including a final unterminated line.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
