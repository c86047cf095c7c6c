/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const CommandName = "simple-cli"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", CommandName, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	cfg := &Config{}

	rootCmd := &cobra.Command{
		Use:           CommandName,
		Short:         "Interactive prompt and list display demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to a simple-cli config file")

	rootCmd.AddCommand(newSafariCmd(cfg))
	rootCmd.AddCommand(newGuessCmd(cfg))
	rootCmd.AddCommand(newColorCmd(cfg))

	return rootCmd
}
