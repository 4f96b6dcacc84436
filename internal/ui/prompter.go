package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// LinePrompter reads one line per prompt from an input stream.
type LinePrompter struct {
	input  *bufio.Reader
	output io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and printing
// prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{input: bufio.NewReader(in), output: out}
}

type readResult struct {
	line string
	err  error
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a trailing newline is returned normally; io.EOF is
// returned only when no input is left.
func (p *LinePrompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.output, prompt)

	// After a cancel the goroutine stays blocked on the shared reader and
	// will swallow the next line, so a LinePrompter is not reusable once
	// its context has ended.
	resultChan := make(chan readResult, 1)
	go func() {
		line, err := p.input.ReadString('\n')
		resultChan <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-resultChan:
		line := strings.TrimRight(r.line, "\r\n")
		if r.err != nil {
			if r.err == io.EOF && line != "" {
				return line, nil
			}
			if r.err == io.EOF {
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read input: %w", r.err)
		}
		return line, nil
	}
}

// ReadPath behaves like ReadLine.
func (p *LinePrompter) ReadPath(ctx context.Context, prompt string) (string, error) {
	return p.ReadLine(ctx, prompt)
}

var _ fmgr.Prompter = (*LinePrompter)(nil)
