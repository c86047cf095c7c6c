/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/mikeb26/simple-cli/types"
)

const enterChoicePrompt = "Enter choice number:"

// PromptChoice presents candidates as a numbered menu on the output stream
// and reads the user's selection. The menu is 1-based for the user; the
// returned index is 0-based. Number parsing and range checking are
// delegated to PromptInt, so out-of-range or unparsable selections are
// retried with the usual diagnostics.
func (s *StdioUI) PromptChoice(userPrompt string,
	candidates []string) (int, string, error) {

	if len(candidates) == 0 {
		return 0, "", errors.Wrap(types.ErrEmptyCandidates, "prompt choice")
	}

	fmt.Fprintln(s.out, userPrompt)
	for i, c := range candidates {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, c)
	}

	idx, err := s.PromptInt(enterChoicePrompt,
		&types.IntBounds{Min: 1, Max: len(candidates)})
	if err != nil {
		return 0, "", err
	}
	s.log.Debug("user selected option", zap.Int("index", idx-1),
		zap.String("value", candidates[idx-1]))

	return idx - 1, candidates[idx-1], nil
}

// PromptStringChoice reads lines until one matches an entry in choices,
// optionally ignoring case. The canonical spelling of the matched choice is
// returned. A near-miss gets a "did you mean" hint alongside the
// diagnostic.
func (s *StdioUI) PromptStringChoice(userPrompt string, choices []string,
	caseSensitive bool) (string, error) {

	if len(choices) == 0 {
		return "", errors.Wrap(types.ErrEmptyCandidates, "prompt string choice")
	}

	var val string
	err := s.promptLoop(userPrompt, func(line string) bool {
		for _, c := range choices {
			if line == c || (!caseSensitive && strings.EqualFold(line, c)) {
				val = c
				return true
			}
		}
		fmt.Fprintf(s.out, "Your input (%s) is not a valid choice.\n", line)
		if matches := fuzzy.Find(line, choices); len(matches) > 0 {
			fmt.Fprintf(s.out, "Did you mean %s?\n", matches[0].Str)
		}
		return false
	})
	if err != nil {
		return "", err
	}

	return val, nil
}
