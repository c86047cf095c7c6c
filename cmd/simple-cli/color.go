/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikeb26/simple-cli/ui"
)

var favoriteColors = []string{
	"Blue", "Red", "Green", "Yellow", "Orange", "Purple", "Brown", "Pink",
	"Gray", "Black", "White",
}

func newColorCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Pick your favorite color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := ui.NewStdioUI().WithRetryLimit(cfg.RetryLimit)

			choice, err := prompter.PromptStringChoice(
				"Enter your favorite color!", favoriteColors, false)
			if err != nil {
				return err
			}
			fmt.Printf("Your favorite color is %v!\n", choice)

			return nil
		},
	}
}
