/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package object holds the FLS heap object variants that need the bytecode
// package (functions, natives, modules) -- kept apart from pkg/value so that
// value (string/list/map, the VM's operand stack payload) never needs to
// import bytecode (chunks, which hold value.Value constants). Together the
// two packages implement the single value.Object interface.
package object

import (
	"fmt"

	"github.com/flslang/fls/pkg/bytecode"
	"github.com/flslang/fls/pkg/value"
)

// Function is a compiled FLS function: its own Chunk, its arity, an
// optional name (empty for the implicit top-level script function), and a
// back-pointer to the Module it was compiled into (used by OP_EXPORT).
type Function struct {
	value.ObjBase
	Name   string
	Arity  int
	Chunk  bytecode.Chunk
	Module *Module
}

// NewFunction returns a new Function compiling into its own empty Chunk.
func NewFunction(name string, module *Module) *Function {
	return &Function{Name: name, Module: module}
}

func (f *Function) Kind() value.ObjKind { return value.ObjFunction }

func (f *Function) String() string {
	if f.Name == "" {
		return "<script>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}
