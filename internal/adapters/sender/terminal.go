package sender

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"filekit/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// TerminalPrompter talks to the user over a line-oriented reader and writer, normally stdin and stdout.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending holds a read left running by a cancelled AskInt; the next call collects it.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *TerminalPrompter) Say(text string) {
	if _, err := fmt.Fprintln(p.out, text); err != nil {
		log.Warn().Err(err).Msg("failed to write to terminal")
	}
}

// AskInt prints question and waits for an integer answer. It returns ctx.Err() as soon as ctx is done, even
// while the read is still blocked.
func (p *TerminalPrompter) AskInt(ctx context.Context, question string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if _, err := fmt.Fprint(p.out, question); err != nil {
		log.Warn().Err(err).Msg("failed to write to terminal")
	}

	if p.pending == nil {
		p.pending = make(chan readResult, 1)
		go func(in *bufio.Reader, ch chan<- readResult) {
			line, err := in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}(p.in, p.pending)
	}

	var res readResult
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res = <-p.pending:
		p.pending = nil
	}

	if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
		return 0, fmt.Errorf("%w: no answer given: %w", domain.ErrInvalidInput, res.err)
	}

	answer := strings.TrimSpace(res.line)
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, answer)
	}

	return n, nil
}
