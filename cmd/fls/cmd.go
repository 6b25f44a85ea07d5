/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/flslang/fls/pkg/errs"
)

// preflightFlag is set by --preflight: run the profiler's dry-run pass
// before the real one.
var preflightFlag bool

var rootCmd = &cobra.Command{
	Use:          "fls [--preflight] [path]",
	SilenceUsage: true,
	Short:        "fls runs FLS scripts",
	Long: `fls interprets FLS source files.

With a path argument, fls reads, compiles and runs it. With no arguments, it
starts a read-eval-print loop over standard input.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			errs.ReportAndExit(errs.NewBadUsage("expected at most one script path, got %d arguments", len(args)))
		}
		return nil
	},
	Run: runScript,
}

func init() {
	rootCmd.Flags().BoolVar(&preflightFlag, "preflight", false, "dry-run the program once looking for runaway loops or recursion before the real run")
	devCmd.AddCommand(devDisassembleCmd, devWalkCmd)
	rootCmd.AddCommand(devCmd)
}

var devCmd = &cobra.Command{
	Use:    "dev <subcommand>",
	Short:  "Collection of subcommands for developing fls itself",
	Hidden: true,
}
