/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"io"

	"github.com/mikeb26/simple-cli/types"
)

// Stdio bundles a prompt engine and a list presenter sharing one output
// stream. It satisfies types.UI.
type Stdio struct {
	*StdioUI
	*StdioPresenter
}

var _ types.UI = (*Stdio)(nil)

func NewStdio() *Stdio {
	u := NewStdioUI()
	return &Stdio{
		StdioUI:        u,
		StdioPresenter: NewStdioPresenter(u).WithWriter(u.out),
	}
}

func (s *Stdio) WithReader(r io.Reader) *Stdio {
	s.StdioUI.WithReader(r)
	return s
}

func (s *Stdio) WithWriter(w io.Writer) *Stdio {
	s.StdioUI.WithWriter(w)
	s.StdioPresenter.WithWriter(w)
	return s
}
