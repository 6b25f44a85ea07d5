/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package object

import (
	"github.com/flslang/fls/pkg/table"
	"github.com/flslang/fls/pkg/value"
)

// Module is a compiled, imported FLS source file: its name (the import
// path it was loaded under), the exports table populated by OP_EXPORT while
// its top-level function runs, and the top-level Function itself. Modules
// are compiled and run exactly once, then cached by name -- a second import
// of the same path reuses the cached Module without re-running it.
type Module struct {
	value.ObjBase
	Name     string
	Exports  *table.Table[*value.String, value.Value]
	Compiled bool
	Toplevel *Function
}

// NewModule returns a new Module named name, with an empty exports table.
// The caller sets Toplevel once compilation of the module's body completes.
func NewModule(name string) *Module {
	return &Module{
		Name:    name,
		Exports: table.New[*value.String, value.Value](),
	}
}

func (m *Module) Kind() value.ObjKind { return value.ObjModule }

func (m *Module) String() string { return "<module " + m.Name + ">" }
