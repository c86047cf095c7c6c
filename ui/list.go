/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mikeb26/simple-cli/types"
)

const (
	noItemsLine    = "(no items)"
	continuePrompt = "Continue? (y/n)"
	browsePrompt   = "Press N for the next page, P for previous, S for a specific page, or E to exit."
	pagePrompt     = "Enter the page you would like to view."
)

// StdioPresenter implements the types.Presenter interface. It borrows the
// caller's item list for the duration of a call and never mutates it; the
// continue gate and menu selections go through the supplied Prompter.
type StdioPresenter struct {
	prompt types.Prompter
	out    io.Writer
	clear  bool
}

var _ types.Presenter = (*StdioPresenter)(nil)

func NewStdioPresenter(prompt types.Prompter) *StdioPresenter {
	return &StdioPresenter{
		prompt: prompt,
		out:    os.Stdout,
	}
}

func (p *StdioPresenter) WithWriter(w io.Writer) *StdioPresenter {
	p.out = w
	return p
}

// WithClear enables a terminal reset between Browse pages, useful for apps
// that re-render a single screen.
func (p *StdioPresenter) WithClear(clear bool) *StdioPresenter {
	p.clear = clear
	return p
}

// DisplayAll writes every item's line in order. An empty list writes a
// single placeholder line; that is a valid terminal state, not an error.
func (p *StdioPresenter) DisplayAll(items []types.Item) {
	if len(items) == 0 {
		fmt.Fprintln(p.out, noItemsLine)
		return
	}
	for _, it := range items {
		fmt.Fprintln(p.out, it.Line())
	}
}

// DisplayHeaderAll is DisplayAll preceded by a header line. An empty header
// is skipped.
func (p *StdioPresenter) DisplayHeaderAll(header string, items []types.Item) {
	if header != "" {
		fmt.Fprintln(p.out, header)
	}
	p.DisplayAll(items)
}

// DisplayPaginated writes items in pages of pageSize, asking the user
// whether to continue after every page except the last. A negative answer
// or closed input stops the pagination without error; the last page is
// shown with no further prompt.
func (p *StdioPresenter) DisplayPaginated(items []types.Item,
	pageSize int) error {

	if pageSize <= 0 {
		return errors.Wrapf(types.ErrInvalidPageSize, "got %d", pageSize)
	}
	if len(items) == 0 {
		fmt.Fprintln(p.out, noItemsLine)
		return nil
	}

	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		for _, it := range items[start:end] {
			fmt.Fprintln(p.out, it.Line())
		}
		if end == len(items) {
			break
		}
		more, err := p.prompt.PromptBool(continuePrompt, nil)
		if err != nil {
			if errors.Is(err, types.ErrInputClosed) {
				// closed input is an implicit "stop"
				return nil
			}
			return err
		}
		if !more {
			return nil
		}
	}

	return nil
}

// SelectFromList presents items as a numbered menu via PromptChoice and
// returns the selected item alongside its index.
func (p *StdioPresenter) SelectFromList(userPrompt string,
	items []types.Item) (int, types.Item, error) {

	if len(items) == 0 {
		return 0, nil, errors.Wrap(types.ErrEmptyCandidates, "select from list")
	}

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Line()
	}
	idx, _, err := p.prompt.PromptChoice(userPrompt, labels)
	if err != nil {
		return 0, nil, err
	}

	return idx, items[idx], nil
}

// Browse shows items one page at a time with next/previous/specific-page
// navigation, an interactive pager rather than the one-way continue gate of
// DisplayPaginated. Closed input exits without error.
func (p *StdioPresenter) Browse(header string, items []types.Item,
	perPage int) error {

	if perPage <= 0 {
		return errors.Wrapf(types.ErrInvalidPageSize, "got %d", perPage)
	}

	pages := (len(items) + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}

	cur := 1
	for {
		if p.clear {
			p.Clear()
		}
		if header != "" {
			fmt.Fprintln(p.out, header)
		}
		start := (cur - 1) * perPage
		end := min(cur*perPage, len(items))
		if start < end {
			for _, it := range items[start:end] {
				fmt.Fprintln(p.out, it.Line())
			}
		} else if len(items) == 0 {
			fmt.Fprintln(p.out, noItemsLine)
		}
		fmt.Fprintf(p.out, "(Page %d of %d)\n", cur, pages)

		cmd, err := p.prompt.PromptStringChoice(browsePrompt,
			[]string{"N", "P", "S", "E"}, false)
		if err != nil {
			if errors.Is(err, types.ErrInputClosed) {
				return nil
			}
			return err
		}

		switch strings.ToLower(cmd) {
		case "n":
			if cur < pages {
				cur++
			}
		case "p":
			if cur > 1 {
				cur--
			}
		case "s":
			n, err := p.prompt.PromptInt(pagePrompt,
				&types.IntBounds{Min: 1, Max: pages})
			if err != nil {
				if errors.Is(err, types.ErrInputClosed) {
					return nil
				}
				return err
			}
			cur = n
		case "e":
			return nil
		}
	}
}

// Clear writes the ESC-c terminal reset sequence to the output stream.
func (p *StdioPresenter) Clear() {
	fmt.Fprint(p.out, "\x1bc")
}
