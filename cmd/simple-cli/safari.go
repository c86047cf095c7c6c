/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"github.com/spf13/cobra"

	"github.com/mikeb26/simple-cli/types"
	"github.com/mikeb26/simple-cli/ui"
)

var safariAnimals = []string{
	"Hippo",
	"Elephant",
	"Lion",
	"Crocodile",
	"Giraffe",
	"Cheetah",
	"Hyena",
	"Rhino",
	"Buffalo",
	"Gorilla",
	"Mongoose",
	"Impala",
	"Mosquito",
	"Bird",
}

func newSafariCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "safari",
		Short: "Browse the animals seen on the Super Cool Safari",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := ui.NewStdioUI().WithRetryLimit(cfg.RetryLimit)
			presenter := ui.NewStdioPresenter(prompter).
				WithClear(cfg.ClearScreen)

			return presenter.Browse("Animals seen on the Super Cool Safari:",
				types.StringItems(safariAnimals), cfg.PageSize)
		},
	}
}
