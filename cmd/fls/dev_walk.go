/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/walk"
)

var devWalkCmd = &cobra.Command{
	Use:   "walk <fls-file>",
	Short: "Runs a script through the tree-walk interpreter instead of the VM",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			errs.ReportAndExit(errs.NewBadUsage("cannot read %s: %v", args[0], err))
		}
		errs.ReportAndExit(walk.Run(args[0], string(source), os.Stdout))
	},
}
