/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	"github.com/mikeb26/simple-cli/types"
)

var _ types.SecretDialogue = (*StdioUI)(nil)

// PromptSecret reads one value without echoing it when the input stream is
// an interactive terminal. On a non-terminal input (pipes, tests) it falls
// back to a plain line read.
func (s *StdioUI) PromptSecret(userPrompt string) (string, error) {
	fmt.Fprintln(s.out, userPrompt)

	f, ok := s.rawIn.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s.readLine()
	}

	secret, err := term.ReadPassword(int(f.Fd()))
	// ReadPassword swallows the user's newline
	fmt.Fprintln(s.out)
	if err != nil {
		return "", errors.Mark(err, types.ErrInputClosed)
	}

	return strings.TrimSpace(string(secret)), nil
}
