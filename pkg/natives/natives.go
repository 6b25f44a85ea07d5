/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package natives implements FLS's native function library: the functions
// the VM makes available to every program as globals, without an import.
//
// Grounded on the reference interpreter's src/vm.c (defineNative calls in
// initVM) and the std/src/*.c files it pulls in via initMathLibrary and
// initRandomLibrary. Every native here stubs out its side effects (file
// I/O, process spawning, console output) when vm.Preflight() reports the
// call is happening during the dry-run pass, per the preflight profiler's
// "suppressed I/O" design.
package natives

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/value"
	"github.com/flslang/fls/pkg/vm"
)

// Register installs the full native library into v's globals. It is the
// register callback pkg/vm.Interpret expects, kept out of pkg/vm itself so
// that vm doesn't need to import natives (which needs *vm.VM).
func Register(v *vm.VM) {
	registerCore(v)
	registerStrings(v)
	registerCollections(v)
	registerMath(v)
	registerFilesystem(v)
	registerAnalyze(v)
}

// def wraps fn as a Native value and binds it to name in v's globals.
func def(v *vm.VM, name string, fn object.NativeFn) {
	v.DefineGlobal(name, value.FromObject(object.NewNative(name, fn)))
}

// fault builds the (Value, false) pair a native returns to signal a runtime
// error: the VM reads the message back out via result.AsString().Chars.
// The message string is deliberately not interned -- it's read once and
// discarded, never becomes a value a program can hold onto.
func fault(format string, a ...any) (value.Value, bool) {
	return value.FromObject(value.NewString(fmt.Sprintf(format, a...))), false
}

// str interns chars through v, the way every FLS string a native hands back
// to a program must be, so pointer identity stays a valid stand-in for
// content equality.
func str(v *vm.VM, chars string) value.Value {
	return value.FromObject(v.Interner().Intern(chars))
}

func registerCore(v *vm.VM) {
	// clock: system time in seconds, matching clock()/CLOCKS_PER_SEC.
	def(v, "clock", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 0 {
			return fault("clock() takes no arguments (%d given).", argc)
		}
		return value.Number(float64(time.Now().UnixNano()) / 1e9), true
	})

	// input: reads one line from v's input reader, with an optional prompt
	// written to v's output first.
	def(v, "input", func(argc int, args []value.Value) (value.Value, bool) {
		if argc > 1 {
			return fault("input() takes at most 1 argument (%d given).", argc)
		}
		if argc == 1 {
			if !args[0].IsString() {
				return fault("input() argument must be a string.")
			}
			if !v.Preflight() {
				fmt.Fprint(v.Out(), args[0].AsString().Chars)
			}
		}
		if v.Preflight() || v.In() == nil {
			return value.Nil, true
		}
		line, err := bufio.NewReader(v.In()).ReadString('\n')
		if err != nil && line == "" {
			return value.Nil, true
		}
		line = strings.TrimRight(line, "\r\n")
		return str(v, line), true
	})

	// println: writes its argument followed by a newline. No keyword
	// collision -- unlike `print`, which is a statement form the compiler
	// reserves (OP_PRINT), so a native of that name would be unreachable
	// from ordinary call syntax and is deliberately not registered here.
	def(v, "println", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("println() takes exactly 1 argument (%d given).", argc)
		}
		if v.Preflight() {
			return value.Nil, true
		}
		fmt.Fprintln(v.Out(), args[0].String())
		return value.Nil, true
	})

	// len: string length, matching stringLengthNative.
	def(v, "len", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("len() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsString() {
			return fault("len() argument must be a string.")
		}
		return value.Number(float64(len(args[0].AsString().Chars))), true
	})

	// isString.
	def(v, "isString", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("isString() takes one argument.")
		}
		return value.Bool(args[0].IsString()), true
	})

	// toString: renders a bool/nil/number/string the way `print` would.
	def(v, "toString", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("toString() takes exactly 1 argument (%d given).", argc)
		}
		a := args[0]
		if a.IsBool() || a.IsNil() || a.IsNumber() || a.IsString() {
			return str(v, a.String()), true
		}
		return fault("toString() argument must be a number, bool, nil, or string.")
	})

	// toNum: parses a string as a float64, nil on a malformed or partial
	// parse, matching strtod's "whole string consumed" check.
	def(v, "toNum", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("toNum() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsString() {
			return fault("toNum() argument must be a string.")
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(args[0].AsString().Chars), 64)
		if err != nil {
			return value.Nil, true
		}
		return value.Number(n), true
	})
}
