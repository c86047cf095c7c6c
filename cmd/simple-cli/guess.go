/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/mikeb26/simple-cli/types"
	"github.com/mikeb26/simple-cli/ui"
)

func newGuessCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "guess",
		Short: "Play a number guessing game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := rand.Intn(100) + 1
			prompter := ui.NewStdioUI().WithRetryLimit(cfg.RetryLimit)

			guesses := 0
			for {
				n, err := prompter.PromptInt("Pick a number between 1 and 100!",
					&types.IntBounds{Min: 1, Max: 100})
				if err != nil {
					return err
				}
				guesses++

				switch {
				case n < secret:
					fmt.Printf("%v is too low!\n", n)
				case n > secret:
					fmt.Printf("%v is too high!\n", n)
				default:
					fmt.Printf("YOU WIN!\n%v was the secret number!\nNumber of guesses: %v\n",
						n, guesses)
					return nil
				}
			}
		},
	}
}
