/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package types

import (
	"strconv"
)

// Item is anything the list presenter can render as a single line of
// output.
type Item interface {
	Line() string
}

type StringItem string

func (s StringItem) Line() string { return string(s) }

type IntItem int

func (i IntItem) Line() string { return strconv.Itoa(int(i)) }

type FloatItem float64

func (f FloatItem) Line() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// StringItems adapts a string slice for display.
func StringItems(vals []string) []Item {
	items := make([]Item, len(vals))
	for i, v := range vals {
		items[i] = StringItem(v)
	}
	return items
}

// IntItems adapts an int slice for display.
func IntItems(vals []int) []Item {
	items := make([]Item, len(vals))
	for i, v := range vals {
		items[i] = IntItem(v)
	}
	return items
}

// FloatItems adapts a float64 slice for display.
func FloatItems(vals []float64) []Item {
	items := make([]Item, len(vals))
	for i, v := range vals {
		items[i] = FloatItem(v)
	}
	return items
}

// IntBounds is an inclusive range constraint for integer prompts.
type IntBounds struct {
	Min int
	Max int
}

// FloatBounds is an inclusive range constraint for floating point prompts.
type FloatBounds struct {
	Min float64
	Max float64
}

// Prompter obtains one validated value per call from the user, re-prompting
// until the input satisfies the requested kind and constraints or the input
// stream closes.
//
//go:generate mockgen --build_flags=--mod=mod -destination=prompter_mock.go -package=$GOPACKAGE github.com/mikeb26/simple-cli/types Prompter
type Prompter interface {
	PromptString(userPrompt string, nonEmpty bool) (string, error)
	PromptStringN(userPrompt string, nonEmpty bool, maxLen int) (string, error)
	PromptInt(userPrompt string, bounds *IntBounds) (int, error)
	PromptFloat(userPrompt string, bounds *FloatBounds) (float64, error)
	PromptChoice(userPrompt string, candidates []string) (int, string, error)
	PromptStringChoice(userPrompt string, choices []string,
		caseSensitive bool) (string, error)
	PromptBool(userPrompt string, defaultVal *bool) (bool, error)
}

// SecretDialogue reads input without echoing it back to the terminal.
type SecretDialogue interface {
	PromptSecret(userPrompt string) (string, error)
}

// Presenter renders an ordered list of items, in full or page by page, and
// can resolve a user selection back to an item.
type Presenter interface {
	DisplayAll(items []Item)
	DisplayHeaderAll(header string, items []Item)
	DisplayPaginated(items []Item, pageSize int) error
	SelectFromList(userPrompt string, items []Item) (int, Item, error)
}

type UI interface {
	Prompter
	Presenter
}
