/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mikeb26/simple-cli/types"
)

func newTestPresenter(input string) (*StdioPresenter, *bytes.Buffer) {
	var out bytes.Buffer
	ui := NewStdioUI().WithReader(strings.NewReader(input)).WithWriter(&out)
	return NewStdioPresenter(ui).WithWriter(&out), &out
}

func TestDisplayAll(t *testing.T) {
	p, out := newTestPresenter("")

	p.DisplayAll(types.StringItems([]string{"Moe", "Larry", "Curly"}))

	assert.Equal(t, "Moe\nLarry\nCurly\n", out.String())
}

func TestDisplayAllEmpty(t *testing.T) {
	p, out := newTestPresenter("")

	p.DisplayAll(nil)

	// exactly one placeholder line, and no error to return
	assert.Equal(t, "(no items)\n", out.String())
}

func TestDisplayAllIdempotent(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3})
	p, out := newTestPresenter("")

	p.DisplayAll(items)
	first := out.String()
	out.Reset()
	p.DisplayAll(items)

	assert.Equal(t, first, out.String())
}

func TestDisplayHeaderAll(t *testing.T) {
	p, out := newTestPresenter("")

	p.DisplayHeaderAll("My list:", types.StringItems([]string{"Moe", "Larry"}))

	assert.Equal(t, "My list:\nMoe\nLarry\n", out.String())
}

func TestDisplayPaginatedAllPages(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4, 5, 6, 7})
	p, out := newTestPresenter("y\ny\n")

	err := p.DisplayPaginated(items, 3)
	assert.NoError(t, err)

	stdout := out.String()
	// pages of 3, 3, and 1 with a continue gate after each non-final page
	assert.Equal(t, 2, strings.Count(stdout, "Continue? (y/n)"))
	for _, line := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		assert.Contains(t, stdout, line+"\n")
	}
	gate := strings.Index(stdout, "Continue? (y/n)")
	assert.Greater(t, gate, strings.Index(stdout, "3\n"))
	assert.Less(t, gate, strings.Index(stdout, "4\n"))
}

func TestDisplayPaginatedStopsOnNo(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4, 5, 6, 7})
	p, out := newTestPresenter("n\n")

	err := p.DisplayPaginated(items, 3)
	assert.NoError(t, err)

	stdout := out.String()
	assert.Contains(t, stdout, "3\n")
	assert.NotContains(t, stdout, "4\n")
	assert.Equal(t, 1, strings.Count(stdout, "Continue? (y/n)"))
}

func TestDisplayPaginatedStopsOnClosedInput(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4, 5})
	p, out := newTestPresenter("")

	err := p.DisplayPaginated(items, 2)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "2\n")
	assert.NotContains(t, out.String(), "3\n")
}

func TestDisplayPaginatedLastPageExact(t *testing.T) {
	// list length divisible by page size: no gate after the final page
	items := types.IntItems([]int{1, 2, 3, 4})
	p, out := newTestPresenter("y\n")

	err := p.DisplayPaginated(items, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "Continue? (y/n)"))
	assert.Contains(t, out.String(), "4\n")
}

func TestDisplayPaginatedInvalidPageSize(t *testing.T) {
	p, out := newTestPresenter("")

	err := p.DisplayPaginated(types.IntItems([]int{1}), 0)
	if !errors.Is(err, types.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	assert.Zero(t, out.Len(), "no output expected before contract error")
}

func TestDisplayPaginatedEmptyList(t *testing.T) {
	p, out := newTestPresenter("")

	err := p.DisplayPaginated(nil, 3)
	assert.NoError(t, err)
	assert.Equal(t, "(no items)\n", out.String())
}

func TestDisplayPaginatedGateMocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := types.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		PromptBool(gomock.Eq("Continue? (y/n)"), gomock.Nil()).
		Return(true, nil).Times(2)

	var out bytes.Buffer
	p := NewStdioPresenter(mockPrompter).WithWriter(&out)

	err := p.DisplayPaginated(types.IntItems([]int{1, 2, 3, 4, 5, 6, 7}), 3)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "7\n")
}

func TestDisplayPaginatedGateDeclinedMocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := types.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		PromptBool(gomock.Any(), gomock.Nil()).
		Return(false, nil).Times(1)

	var out bytes.Buffer
	p := NewStdioPresenter(mockPrompter).WithWriter(&out)

	err := p.DisplayPaginated(types.IntItems([]int{1, 2, 3, 4, 5, 6, 7}), 3)
	assert.NoError(t, err)
	assert.NotContains(t, out.String(), "4\n")
}

func TestSelectFromList(t *testing.T) {
	var out bytes.Buffer
	ui := NewStdioUI().WithReader(strings.NewReader("2\n")).WithWriter(&out)
	p := NewStdioPresenter(ui).WithWriter(&out)

	idx, item, err := p.SelectFromList("Choose one:",
		types.StringItems([]string{"a", "b", "c"}))
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", item.Line())
	assert.Contains(t, out.String(), "2) b")
}

func TestSelectFromListEmpty(t *testing.T) {
	p, out := newTestPresenter("1\n")

	_, _, err := p.SelectFromList("Choose:", nil)
	if !errors.Is(err, types.ErrEmptyCandidates) {
		t.Fatalf("expected ErrEmptyCandidates, got %v", err)
	}
	assert.Zero(t, out.Len(), "no prompt text expected for empty list")
}

func TestSelectFromListInputClosed(t *testing.T) {
	p, _ := newTestPresenter("")

	_, _, err := p.SelectFromList("Choose:", types.StringItems([]string{"a"}))
	if !errors.Is(err, types.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestBrowseNextThenExit(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4, 5, 6, 7})
	p, out := newTestPresenter("N\nE\n")

	err := p.Browse("Numbers:", items, 3)
	assert.NoError(t, err)

	stdout := out.String()
	assert.Contains(t, stdout, "(Page 1 of 3)")
	assert.Contains(t, stdout, "(Page 2 of 3)")
	assert.NotContains(t, stdout, "(Page 3 of 3)")
	assert.Contains(t, stdout, "4\n")
}

func TestBrowseSpecificPage(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4, 5, 6, 7})
	p, out := newTestPresenter("s\n3\ne\n")

	err := p.Browse("", items, 3)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "(Page 3 of 3)")
	assert.Contains(t, out.String(), "7\n")
}

func TestBrowsePreviousClampsAtFirstPage(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3})
	p, out := newTestPresenter("P\nE\n")

	err := p.Browse("", items, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "(Page 1 of 2)"))
}

func TestBrowseClosedInputExits(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4})
	p, out := newTestPresenter("")

	err := p.Browse("Numbers:", items, 2)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "(Page 1 of 2)")
}

func TestBrowseInvalidPerPage(t *testing.T) {
	p, out := newTestPresenter("")

	err := p.Browse("", types.IntItems([]int{1}), -1)
	if !errors.Is(err, types.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	assert.Zero(t, out.Len())
}

func TestBrowseClearBetweenPages(t *testing.T) {
	items := types.IntItems([]int{1, 2, 3, 4})
	p, out := newTestPresenter("n\ne\n")
	p.WithClear(true)

	err := p.Browse("", items, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "\x1bc"))
}

func TestStdioSatisfiesUI(t *testing.T) {
	var out bytes.Buffer
	s := NewStdio().WithReader(strings.NewReader("2\n")).WithWriter(&out)

	var ui types.UI = s
	idx, item, err := ui.SelectFromList("Choose:",
		types.StringItems([]string{"x", "y"}))
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "y", item.Line())
}
