/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package natives

import (
	"strings"

	"github.com/flslang/fls/pkg/value"
	"github.com/flslang/fls/pkg/vm"
)

func registerStrings(v *vm.VM) {
	// lines: counts newline-delimited lines, not counting a trailing empty
	// line caused by a final "\n", matching countLinesNative.
	def(v, "lines", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("lines() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsString() {
			return fault("lines() argument must be a string.")
		}
		chars := args[0].AsString().Chars
		if chars == "" {
			return value.Number(0), true
		}
		count := 1 + strings.Count(chars, "\n")
		if strings.HasSuffix(chars, "\n") {
			count--
		}
		return value.Number(float64(count)), true
	})

	def(v, "endsWith", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("endsWith() takes exactly 2 arguments (%d given).", argc)
		}
		if !args[0].IsString() || !args[1].IsString() {
			return fault("endsWith() arguments must be strings.")
		}
		return value.Bool(strings.HasSuffix(args[0].AsString().Chars, args[1].AsString().Chars)), true
	})

	def(v, "startsWith", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("startsWith() takes exactly 2 arguments (%d given).", argc)
		}
		if !args[0].IsString() || !args[1].IsString() {
			return fault("startsWith() arguments must be strings.")
		}
		return value.Bool(strings.HasPrefix(args[0].AsString().Chars, args[1].AsString().Chars)), true
	})

	// substring: half-open [start, end) slice, erroring on an out-of-range
	// or inverted range rather than clamping, matching substringNative.
	def(v, "substring", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 3 {
			return fault("substring() takes exactly 3 arguments (%d given).", argc)
		}
		if !args[0].IsString() || !args[1].IsNumber() || !args[2].IsNumber() {
			return fault("substring() expects a string and two numbers (start, end).")
		}
		chars := args[0].AsString().Chars
		start := int(args[1].AsNumber())
		end := int(args[2].AsNumber())
		if start < 0 || end > len(chars) || start > end {
			return fault("substring() arguments out of range.")
		}
		return str(v, chars[start:end]), true
	})

	// split: an empty delimiter returns the whole string as a one-element
	// list, matching splitNative's special case rather than splitting on
	// every rune.
	def(v, "split", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("split() takes exactly 2 arguments (%d given).", argc)
		}
		if !args[0].IsString() || !args[1].IsString() {
			return fault("split() arguments must be strings.")
		}
		chars := args[0].AsString().Chars
		delim := args[1].AsString().Chars
		list := v.NewList()
		if delim == "" {
			list.Append(str(v, chars))
			return value.FromObject(list), true
		}
		for _, part := range strings.Split(chars, delim) {
			list.Append(str(v, part))
			v.TrackGrowth(list, len(list.Items))
		}
		return value.FromObject(list), true
	})

	def(v, "trim", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("trim() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsString() {
			return fault("trim() argument must be a string.")
		}
		return str(v, strings.TrimSpace(args[0].AsString().Chars)), true
	})

	def(v, "toUpperCase", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("toUpperCase() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsString() {
			return fault("toUpperCase() argument must be a string.")
		}
		return str(v, strings.ToUpper(args[0].AsString().Chars)), true
	})

	def(v, "toLowerCase", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("toLowerCase() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsString() {
			return fault("toLowerCase() argument must be a string.")
		}
		return str(v, strings.ToLower(args[0].AsString().Chars)), true
	})
}
