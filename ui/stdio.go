// Package ui implements line-oriented prompting and list display over a
// pair of I/O streams, normally stdin and stdout. All state is call-scoped;
// a single StdioUI must not be driven from multiple goroutines at once.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/mikeb26/simple-cli/types"
)

// StdioUI implements the types.Prompter interface using standard
// input/output. The reader, writer, logger, and retry limit can be swapped
// with the With* builders, primarily for testing and embedding.
type StdioUI struct {
	in         *bufio.Reader
	rawIn      io.Reader
	out        io.Writer
	log        *zap.Logger
	retryLimit int // 0 means retry forever
}

var _ types.Prompter = (*StdioUI)(nil)

func NewStdioUI() *StdioUI {
	return &StdioUI{
		in:    bufio.NewReader(os.Stdin),
		rawIn: os.Stdin,
		out:   os.Stdout,
		log:   zap.NewNop(),
	}
}

func (s *StdioUI) WithReader(r io.Reader) *StdioUI {
	s.in = bufio.NewReader(r)
	s.rawIn = r
	return s
}

func (s *StdioUI) WithWriter(w io.Writer) *StdioUI {
	s.out = w
	return s
}

func (s *StdioUI) WithLogger(log *zap.Logger) *StdioUI {
	s.log = log
	return s
}

// WithRetryLimit bounds the number of rejected inputs tolerated per prompt
// call before giving up with types.ErrRetryLimit. Zero retries forever.
func (s *StdioUI) WithRetryLimit(limit int) *StdioUI {
	s.retryLimit = limit
	return s
}

// readLine consumes exactly one line from the input stream, stripping the
// trailing LF and any preceding CR. An EOF carrying a non-empty partial
// line yields that line; the closed stream is reported on the next read.
func (s *StdioUI) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		s.log.Debug("input stream closed", zap.Error(err))
		return "", errors.Mark(err, types.ErrInputClosed)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// promptLoop writes userPrompt, reads a line, and hands it to accept. It
// re-issues the prompt after every rejection; accept emits its own
// diagnostic before rejecting. The loop ends on acceptance, closed input,
// or an exhausted retry limit.
func (s *StdioUI) promptLoop(userPrompt string, accept func(line string) bool) error {
	attempts := 0
	for {
		fmt.Fprintln(s.out, userPrompt)
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if accept(line) {
			return nil
		}
		attempts++
		s.log.Debug("input rejected", zap.String("prompt", userPrompt),
			zap.Int("attempts", attempts))
		if s.retryLimit > 0 && attempts >= s.retryLimit {
			return errors.Wrapf(types.ErrRetryLimit, "after %d attempts",
				attempts)
		}
	}
}

// PromptString reads one line, stripping the trailing newline. With
// nonEmpty set, an empty line is rejected with a diagnostic and the prompt
// is re-issued.
func (s *StdioUI) PromptString(userPrompt string, nonEmpty bool) (string, error) {
	return s.PromptStringN(userPrompt, nonEmpty, 0)
}

// PromptStringN is PromptString with a maximum length in runes. A maxLen of
// zero or less means unlimited.
func (s *StdioUI) PromptStringN(userPrompt string, nonEmpty bool,
	maxLen int) (string, error) {

	var val string
	err := s.promptLoop(userPrompt, func(line string) bool {
		if nonEmpty && line == "" {
			fmt.Fprintln(s.out, "Your input cannot be empty.")
			return false
		}
		if maxLen > 0 {
			if n := len([]rune(line)); n > maxLen {
				fmt.Fprintf(s.out, "Your input is %d characters over the %d character limit. Please try again.\n",
					n-maxLen, maxLen)
				return false
			}
		}
		val = line
		return true
	})
	if err != nil {
		return "", err
	}

	return val, nil
}

// PromptInt reads lines until one parses as an integer within bounds.
// A nil bounds accepts any integer; a present bound is inclusive.
func (s *StdioUI) PromptInt(userPrompt string,
	bounds *types.IntBounds) (int, error) {

	var val int
	err := s.promptLoop(userPrompt, func(line string) bool {
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(s.out, "Please enter a valid integer value.")
			return false
		}
		if bounds != nil {
			if n < bounds.Min {
				fmt.Fprintf(s.out, "Your input (%d) is lower than the minimum allowed value of %d.\n",
					n, bounds.Min)
				return false
			}
			if n > bounds.Max {
				fmt.Fprintf(s.out, "Your input (%d) is larger than the maximum allowed value of %d.\n",
					n, bounds.Max)
				return false
			}
		}
		val = n
		return true
	})
	if err != nil {
		return 0, err
	}
	s.log.Debug("accepted integer input", zap.Int("value", val))

	return val, nil
}

// PromptFloat reads lines until one parses as a floating point value within
// bounds. A nil bounds accepts any value; a present bound is inclusive.
func (s *StdioUI) PromptFloat(userPrompt string,
	bounds *types.FloatBounds) (float64, error) {

	var val float64
	err := s.promptLoop(userPrompt, func(line string) bool {
		f, convErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if convErr != nil {
			fmt.Fprintln(s.out, "Please enter a valid number value.")
			return false
		}
		if bounds != nil {
			if f < bounds.Min {
				fmt.Fprintf(s.out, "Your input (%v) is lower than the minimum allowed value of %v.\n",
					f, bounds.Min)
				return false
			}
			if f > bounds.Max {
				fmt.Fprintf(s.out, "Your input (%v) is larger than the maximum allowed value of %v.\n",
					f, bounds.Max)
				return false
			}
		}
		val = f
		return true
	})
	if err != nil {
		return 0, err
	}
	s.log.Debug("accepted float input", zap.Float64("value", val))

	return val, nil
}

// PromptBool asks a yes/no question. Empty input takes defaultVal when one
// is provided; anything other than y/yes/n/no is rejected with a
// diagnostic.
func (s *StdioUI) PromptBool(userPrompt string, defaultVal *bool) (bool, error) {
	var val bool
	err := s.promptLoop(userPrompt, func(line string) bool {
		if line == "" && defaultVal != nil {
			val = *defaultVal
			return true
		}
		if answer, ok := NormalizeYesNo(line); ok {
			val = answer
			return true
		}
		fmt.Fprintln(s.out, "Please answer 'y' or 'n'.")
		return false
	})
	if err != nil {
		return false, err
	}

	return val, nil
}

// NormalizeYesNo reports whether input is an affirmative answer. The second
// return is false when the input is neither affirmative nor negative.
func NormalizeYesNo(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
