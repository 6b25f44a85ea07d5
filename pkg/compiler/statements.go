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
	"github.com/flslang/fls/pkg/value"
)

// declaration parses one top-level or block-level declaration: an optional
// `export` prefix, then a function, variable, or import declaration, or
// (lacking any of those keywords) a plain statement. Recovers via
// synchronize() when panicMode was entered while parsing it.
func (c *Compiler) declaration() {
	isExport := c.match(lexer.KindExport)

	switch {
	case c.match(lexer.KindFun):
		c.funDeclaration(isExport)
	case c.match(lexer.KindVar):
		c.varDeclaration(isExport)
	case c.match(lexer.KindImport):
		if isExport {
			c.error("Cannot export an import statement.")
		}
		c.importStatement()
	default:
		if isExport {
			c.error("Can only export function and variable declarations.")
		}
		c.statement()
	}

	if c.panicMode {
		c.synchronize()
	}
}

func (c *Compiler) funDeclaration(isExport bool) {
	global := c.parseVariable("Expect function name.")
	c.markInitialized()
	c.function(typeFunction)
	c.defineVariable(global)

	if isExport {
		c.emitOpByte(bytecode.OpExport, global)
	}
}

func (c *Compiler) varDeclaration(isExport bool) {
	global := c.parseVariable("Expect variable name.")

	if c.match(lexer.KindEqual) {
		c.expression()
	} else {
		c.emitOp(bytecode.OpNil)
	}
	c.consume(lexer.KindSemicolon, "Expect ';' after variable declaration.")

	c.defineVariable(global)

	if isExport {
		c.emitOpByte(bytecode.OpExport, global)
	}
}

func (c *Compiler) importStatement() {
	c.consume(lexer.KindString, "Expect module path string.")
	path := newInternedString(c, stringLexeme(c.prev.Lexeme))
	c.emitConstant(path)
	c.emitOp(bytecode.OpImport)
	c.consume(lexer.KindSemicolon, "Expect ';' after import statement.")
}

// function compiles a function's parameter list and body in a fresh nested
// compiler state, then emits the resulting object.Function as a constant
// of the *enclosing* function -- mirroring how a function value is, at
// runtime, just another constant loaded onto the stack.
func (c *Compiler) function(typ functionType) {
	c.pushState(typ, c.prev.Lexeme)
	c.beginScope()

	c.consume(lexer.KindLeftParen, "Expect '(' after function name.")
	if !c.check(lexer.KindRightParen) {
		for {
			c.st.fn.Arity++
			if c.st.fn.Arity > 255 {
				c.errorAtCurrent("Can't have more than 255 parameters.")
			}
			constant := c.parseVariable("Expect parameter name.")
			c.defineVariable(constant)
			if !c.match(lexer.KindComma) {
				break
			}
		}
	}
	c.consume(lexer.KindRightParen, "Expect ')' after parameters.")
	c.consume(lexer.KindLeftBrace, "Expect '{' before function body.")
	c.block()

	fn := c.popState()
	c.emitConstant(value.FromObject(fn))
}

func (c *Compiler) block() {
	for !c.check(lexer.KindRightBrace) && !c.check(lexer.KindEOF) {
		c.declaration()
	}
	c.consume(lexer.KindRightBrace, "Expect '}' after block.")
}

func (c *Compiler) statement() {
	switch {
	case c.match(lexer.KindPrint):
		c.printStatement()
	case c.match(lexer.KindFor):
		c.forStatement()
	case c.match(lexer.KindIf):
		c.ifStatement()
	case c.match(lexer.KindReturn):
		c.returnStatement()
	case c.match(lexer.KindWhile):
		c.whileStatement()
	case c.match(lexer.KindLeftBrace):
		c.beginScope()
		c.block()
		c.endScope()
	default:
		c.expressionStatement()
	}
}

func (c *Compiler) printStatement() {
	c.expression()
	c.consume(lexer.KindSemicolon, "Expect ';' after value.")
	c.emitOp(bytecode.OpPrint)
}

func (c *Compiler) expressionStatement() {
	c.expression()
	c.consume(lexer.KindSemicolon, "Expect ';' after expression.")
	c.emitOp(bytecode.OpPop)
}

func (c *Compiler) returnStatement() {
	if c.st.fnType == typeScript {
		c.error("Can't return from top-level code.")
	}

	if c.match(lexer.KindSemicolon) {
		c.emitReturn()
		return
	}
	c.expression()
	c.consume(lexer.KindSemicolon, "Expect ';' after return value.")
	c.emitOp(bytecode.OpReturn)
}

func (c *Compiler) ifStatement() {
	c.consume(lexer.KindLeftParen, "Expect '(' after 'if'.")
	c.expression()
	c.consume(lexer.KindRightParen, "Expect ')' after condition.")

	thenJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitOp(bytecode.OpPop)
	c.statement()

	elseJump := c.emitJump(bytecode.OpJump)

	c.patchJump(thenJump)
	c.emitOp(bytecode.OpPop)

	if c.match(lexer.KindElse) {
		c.statement()
	}
	c.patchJump(elseJump)
}

func (c *Compiler) whileStatement() {
	loopStart := c.chunk().Len()
	c.consume(lexer.KindLeftParen, "Expect '(' after 'while'.")
	c.expression()
	c.consume(lexer.KindRightParen, "Expect ')' after condition.")

	exitJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitOp(bytecode.OpPop)
	c.statement()
	c.emitLoop(loopStart)

	c.patchJump(exitJump)
	c.emitOp(bytecode.OpPop)
}

func (c *Compiler) forStatement() {
	c.beginScope()
	c.consume(lexer.KindLeftParen, "Expect '(' after 'for'.")

	switch {
	case c.match(lexer.KindSemicolon):
		// No initializer.
	case c.match(lexer.KindVar):
		c.varDeclaration(false)
	default:
		c.expressionStatement()
	}

	loopStart := c.chunk().Len()
	exitJump := -1
	if !c.match(lexer.KindSemicolon) {
		c.expression()
		c.consume(lexer.KindSemicolon, "Expect ';' after loop condition.")

		exitJump = c.emitJump(bytecode.OpJumpIfFalse)
		c.emitOp(bytecode.OpPop)
	}

	if !c.match(lexer.KindRightParen) {
		bodyJump := c.emitJump(bytecode.OpJump)
		incrementStart := c.chunk().Len()
		c.expression()
		c.emitOp(bytecode.OpPop)
		c.consume(lexer.KindRightParen, "Expect ')' after for clauses.")

		c.emitLoop(loopStart)
		loopStart = incrementStart
		c.patchJump(bodyJump)
	}

	c.statement()
	c.emitLoop(loopStart)

	if exitJump != -1 {
		c.patchJump(exitJump)
		c.emitOp(bytecode.OpPop)
	}

	c.endScope()
}
