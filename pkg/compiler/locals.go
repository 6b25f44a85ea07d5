/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler

import (
	"github.com/flslang/fls/pkg/bytecode"
	"github.com/flslang/fls/pkg/lexer"
)

// resolveLocal looks up name among the current function's in-scope
// locals, innermost first. Reports an error if name refers to a local
// still mid-declaration (reading a variable from its own initializer).
func (c *Compiler) resolveLocal(name lexer.Token) (byte, bool) {
	for i := len(c.st.locals) - 1; i >= 0; i-- {
		l := &c.st.locals[i]
		if l.name == name.Lexeme {
			if l.depth == -1 {
				c.error("Can't read local variable in its own initializer.")
			}
			return byte(i), true
		}
	}
	return 0, false
}

// addLocal reserves a new local slot for name, marked uninitialized until
// markInitialized runs after its initializer has been compiled.
func (c *Compiler) addLocal(name lexer.Token) {
	if len(c.st.locals) == maxLocals {
		c.error("Too many local variables in function.")
		return
	}
	c.st.locals = append(c.st.locals, local{name: name.Lexeme, depth: -1})
}

// declareVariable registers the previously-consumed identifier token as a
// new local in the current scope (a no-op at global scope, where variables
// live in the globals table instead). Shadowing an outer scope is fine;
// redeclaring a name already local to the *same* scope is an error.
func (c *Compiler) declareVariable() {
	if c.st.scopeDep == 0 {
		return
	}

	name := c.prev
	for i := len(c.st.locals) - 1; i >= 0; i-- {
		l := &c.st.locals[i]
		if l.depth != -1 && l.depth < c.st.scopeDep {
			break
		}
		if l.name == name.Lexeme {
			c.error("Already a variable with this name in this scope.")
		}
	}
	c.addLocal(name)
}

// parseVariable consumes an identifier token, declares it (if local), and
// returns the constant-pool index to use with DEFINE_GLOBAL (0, unused, for
// a local).
func (c *Compiler) parseVariable(message string) byte {
	c.consume(lexer.KindIdentifier, message)

	c.declareVariable()
	if c.st.scopeDep > 0 {
		return 0
	}
	return c.identifierConstant(c.prev)
}

func (c *Compiler) markInitialized() {
	if c.st.scopeDep == 0 {
		return
	}
	c.st.locals[len(c.st.locals)-1].depth = c.st.scopeDep
}

// defineVariable emits DEFINE_GLOBAL for a global, or simply marks a local
// as initialized (its value is already sitting in the right stack slot).
func (c *Compiler) defineVariable(global byte) {
	if c.st.scopeDep > 0 {
		c.markInitialized()
		return
	}
	c.emitOpByte(bytecode.OpDefineGlobal, global)
}
