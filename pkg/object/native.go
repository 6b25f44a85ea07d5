/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package object

import "github.com/flslang/fls/pkg/value"

// NativeFn is the calling convention for a native function: it receives the
// argument count and the argument slice (args[0] is the first argument,
// never the receiver -- FLS natives are free functions), and returns either
// a result value, or signals a runtime fault by returning ok=false together
// with a Value holding the fault message as a string.
type NativeFn func(argc int, args []value.Value) (result value.Value, ok bool)

// Native wraps a Go function so it can be called from FLS code like any
// other function value.
type Native struct {
	value.ObjBase
	Name string
	Fn   NativeFn
}

// NewNative returns a new Native wrapping fn.
func NewNative(name string, fn NativeFn) *Native {
	return &Native{Name: name, Fn: fn}
}

func (n *Native) Kind() value.ObjKind { return value.ObjNative }

func (n *Native) String() string { return "<native fn " + n.Name + ">" }
