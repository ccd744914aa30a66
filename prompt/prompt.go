// Package prompt reads locale-formatted amounts from an interactive
// terminal, asking again until a line parses.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/luca-patrignani/pot-odds/domain/locale"
)

const RetryMessage = "Invalid value. Please try again: "

// space is the C locale whitespace set.
const space = " \t\n\v\f\r"

type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

func NewReader(in io.Reader, out io.Writer, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reader{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Ask writes label and reads a value with ReadValue.
func (r *Reader) Ask(ctx context.Context, label string) (float64, error) {
	if _, err := io.WriteString(r.out, label); err != nil {
		return 0, err
	}
	return r.ReadValue(ctx)
}

// ReadValue returns the first line that parses as a number. ASCII
// whitespace before a line, blank lines included, is skipped. The rest of
// the line is taken as is, so a trailing '\r' is rejected. After each rejected
// line RetryMessage is written and the next line is read. It only gives
// up when the input ends or ctx is done.
func (r *Reader) ReadValue(ctx context.Context) (float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := r.readLine()
		if err != nil {
			return 0, fmt.Errorf("reading value: %w", err)
		}
		if v, ok := locale.Parse(line); ok {
			return v, nil
		}
		r.logger.Debug("rejected input", "line", line)
		if _, err := io.WriteString(r.out, RetryMessage); err != nil {
			return 0, err
		}
	}
}

func (r *Reader) readLine() (string, error) {
	if err := r.skipSpace(); err != nil {
		return "", err
	}
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func (r *Reader) skipSpace() error {
	for {
		c, err := r.in.ReadByte()
		if err != nil {
			return err
		}
		if strings.IndexByte(space, c) < 0 {
			return r.in.UnreadByte()
		}
	}
}
