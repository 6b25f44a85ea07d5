/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flslang/fls/pkg/config"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/natives"
	"github.com/flslang/fls/pkg/vm"
)

// maxScriptSize is the largest source file fls will read.
const maxScriptSize = 100 * 1024 * 1024

func runScript(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		repl()
		return
	}
	runFile(args[0])
}

// runFile reads, compiles and runs the script at path, exiting with the
// status code matching what happened (0 success, 65 compile error, 70
// runtime error, 64 bad usage).
func runFile(path string) {
	info, err := os.Stat(path)
	if err != nil {
		errs.ReportAndExit(errs.NewBadUsage("cannot read %s: %v", path, err))
	}
	if info.Size() > maxScriptSize {
		errs.ReportAndExit(errs.NewBadUsage("%s is too large (%d bytes, limit is %d)", path, info.Size(), maxScriptSize))
	}

	source, err := os.ReadFile(path)
	if err != nil {
		errs.ReportAndExit(errs.NewBadUsage("cannot read %s: %v", path, err))
	}

	cfg := config.LoadNextTo(path)
	cfg.Apply()

	rerr := vm.Interpret(path, string(source), os.Stdout, os.Stdin, preflightFlag, natives.Register)
	errs.ReportAndExit(rerr)
}

// repl runs a read-eval loop, feeding one line at a time to Interpret. Each
// line is its own top-level program: a variable declared on one line does
// not carry over to the next.
func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if err := vm.Interpret("<REPL>", line, os.Stdout, os.Stdin, false, natives.Register); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		fmt.Print("> ")
	}
}
