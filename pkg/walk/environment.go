/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package walk

import "github.com/flslang/fls/pkg/value"

// Environment is one scope in the tree-walk interpreter's scope chain,
// grounded on the reference interpreter's Environment struct: an enclosing
// pointer plus a table of this scope's own bindings. Unlike the bytecode
// VM's globals table, scopes here are plain Go maps keyed by name -- there's
// no interning or constant-pool indirection to reuse in a walk backend that
// never compiles anything.
type Environment struct {
	enclosing *Environment
	values    map[string]value.Value
}

// NewEnvironment returns a new scope enclosed by parent. Pass a nil parent
// for the outermost (global) scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: make(map[string]value.Value)}
}

// Define binds name in this scope, shadowing any binding of the same name in
// an enclosing scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name, walking outward through enclosing scopes.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return value.Nil, false
}

// Assign rebinds an existing name, walking outward through enclosing scopes.
// Returns false if name isn't bound anywhere in the chain -- FLS has no
// implicit-global assignment.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return false
}
