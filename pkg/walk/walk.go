/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package walk is a secondary, tree-walking FLS interpreter used by `fls dev
// walk` and by tests that want to exercise the language semantics without
// going through the bytecode compiler and VM. It understands a subset of
// full FLS: no import/export, no lists or subscripts, no `for` statement, no
// native functions, and no preflight profiler -- those stay exclusive to
// pkg/compiler and pkg/vm, the production path.
package walk

import (
	"io"

	"github.com/flslang/fls/pkg/errs"
)

// Run parses and interprets source directly off its parse tree, printing
// `print` statement output to out. fileName is used only for error
// messages.
func Run(fileName, source string, out io.Writer) errs.Error {
	parser := NewParser(fileName, source)
	program, parseErrs := parser.Parse()
	if parseErrs != nil {
		return parseErrs
	}

	interp := NewInterpreter(out)
	return interp.Run(program)
}
