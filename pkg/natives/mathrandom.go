/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package natives

import (
	"math"
	"math/rand/v2"

	"github.com/flslang/fls/pkg/value"
	"github.com/flslang/fls/pkg/vm"
)

// registerMath installs the one-argument math natives (grounded on
// std/src/math.c's NATIVE_MATH_FUNC macro) plus the PI constant. `abs` is
// registered under both "abs" (src/vm.c's own initVM entry) and "fabs"
// (math.c's initMathLibrary entry for the same function) -- the reference
// interpreter registers the identical native under both names, so this
// keeps both reachable rather than picking one as "the real one".
func registerMath(v *vm.VM) {
	unary := func(name string, fn func(float64) float64) {
		def(v, name, func(argc int, args []value.Value) (value.Value, bool) {
			if argc != 1 {
				return fault("%s() takes exactly 1 argument (%d given).", name, argc)
			}
			if !args[0].IsNumber() {
				return fault("%s() argument must be a number.", name)
			}
			return value.Number(fn(args[0].AsNumber())), true
		})
	}

	unary("sqrt", math.Sqrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("log", math.Log)
	unary("log10", math.Log10)
	unary("exp", math.Exp)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)

	abs := func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("abs() takes exactly 1 argument (%d given).", argc)
		}
		if !args[0].IsNumber() {
			return fault("abs() argument must be a number.")
		}
		return value.Number(math.Abs(args[0].AsNumber())), true
	}
	def(v, "abs", abs)
	def(v, "fabs", abs)

	def(v, "pow", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("pow() takes exactly 2 arguments (%d given).", argc)
		}
		if !args[0].IsNumber() || !args[1].IsNumber() {
			return fault("pow() arguments must be numbers.")
		}
		return value.Number(math.Pow(args[0].AsNumber(), args[1].AsNumber())), true
	})

	def(v, "fmod", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("fmod() takes exactly 2 arguments (%d given).", argc)
		}
		if !args[0].IsNumber() || !args[1].IsNumber() {
			return fault("fmod() arguments must be numbers.")
		}
		return value.Number(math.Mod(args[0].AsNumber(), args[1].AsNumber())), true
	})

	v.DefineGlobal("PI", value.Number(math.Pi))

	registerRandom(v)
}

// registerRandom installs `random`/`randomInt`, grounded on std/src/random.c.
// The reference interpreter seeds its own xorshift* generator from
// time(NULL); math/rand/v2's top-level functions are already seeded
// unpredictably at process start, so there is no separate seeding step to
// port.
func registerRandom(v *vm.VM) {
	def(v, "random", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 0 {
			return fault("random() takes no arguments (%d given).", argc)
		}
		return value.Number(rand.Float64()), true
	})

	def(v, "randomInt", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("randomInt() takes exactly 2 arguments (%d given).", argc)
		}
		if !args[0].IsNumber() || !args[1].IsNumber() {
			return fault("randomInt() arguments must be numbers.")
		}
		min := int(args[0].AsNumber())
		max := int(args[1].AsNumber())
		if min > max {
			return fault("randomInt() min must not be greater than max.")
		}
		return value.Number(float64(min + rand.IntN(max-min+1))), true
	})
}
