/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package walk

import (
	"github.com/flslang/fls/pkg/ast"
	"github.com/flslang/fls/pkg/value"
)

// Closure is the walk backend's function value: an FLS function declaration
// paired with the environment that was active where it was declared, so
// that it can see the locals of its enclosing scopes when called later.
// Implements value.Object (via value.ObjClosure) so it can travel through
// Environments and be passed around just like any other Value.
type Closure struct {
	value.ObjBase

	Decl *ast.FunctionStmt
	Env  *Environment
}

// NewClosure returns a Closure over decl, capturing env.
func NewClosure(decl *ast.FunctionStmt, env *Environment) *Closure {
	return &Closure{Decl: decl, Env: env}
}

func (c *Closure) Kind() value.ObjKind { return value.ObjClosure }

func (c *Closure) String() string {
	if c.Decl.Name == "" {
		return "<fn>"
	}
	return "<fn " + c.Decl.Name + ">"
}
