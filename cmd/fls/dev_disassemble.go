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

	"github.com/flslang/fls/pkg/bytecode"
	"github.com/flslang/fls/pkg/compiler"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/value"
)

var devDisassembleCmd = &cobra.Command{
	Use:   "disassemble <fls-file>",
	Short: "Compiles a script and prints its bytecode",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			errs.ReportAndExit(errs.NewBadUsage("cannot read %s: %v", args[0], err))
		}

		interner := value.NewInterner()
		mod := object.NewModule("<main>")
		fn, cerr := compiler.Compile(args[0], string(source), mod, interner)
		if cerr != nil {
			errs.ReportAndExit(cerr)
		}

		disassembleRecursive(fn, os.Stdout)
	},
}

// disassembleRecursive prints fn's chunk, then recurses into every function
// constant found in it -- so nested function declarations get their own
// disassembly too, not just the top-level script function.
func disassembleRecursive(fn *object.Function, out *os.File) {
	name := fn.Name
	if name == "" {
		name = "<script>"
	}
	bytecode.Disassemble(&fn.Chunk, name, out)

	for _, c := range fn.Chunk.Constants {
		if c.IsObject() {
			if nested, ok := c.AsObject().(*object.Function); ok {
				disassembleRecursive(nested, out)
			}
		}
	}
}
