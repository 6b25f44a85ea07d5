/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package compiler implements FLS's single-pass compiler: a Pratt parser
// that emits bytecode directly as it recognizes each expression and
// statement, with no intervening AST.
package compiler

import (
	"math"
	"strconv"

	"github.com/flslang/fls/pkg/bytecode"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/lexer"
	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/value"
)

const maxLocals = 256

// functionType distinguishes the implicit top-level script function from a
// user-defined one; only the latter accepts `return value;`.
type functionType int

const (
	typeScript functionType = iota
	typeFunction
)

// local records one in-scope local variable: its name and the scope depth
// at which it was declared. depth -1 marks "declared but not yet
// initialized" -- the window during which referring to the variable by
// name in its own initializer is an error.
type local struct {
	name  string
	depth int
}

// state is one function's worth of compiler state. Nested function
// compilation chains a fresh state to its enclosing one, mirroring the call
// stack of compiler invocations.
type state struct {
	enclosing *state

	fn       *object.Function
	fnType   functionType
	locals   []local
	scopeDep int
}

// Compiler turns FLS source into a compiled top-level object.Function.
// One Compiler compiles one module; nested function bodies are compiled by
// pushing and popping compiler states, not by creating new Compilers.
type Compiler struct {
	lex      *lexer.Lexer
	cur      lexer.Token
	prev     lexer.Token
	module   *object.Module
	interner *value.Interner

	fileName string
	source   string

	errs      errs.CompileTimeCollection
	panicMode bool

	st *state
}

// Compile compiles source (from the file or REPL line named fileName) as
// the top-level body of module. Strings are interned through interner, the
// same pool the VM running the result will use. On success it returns the
// compiled function and a nil error. On failure it returns nil and a
// *errs.CompileTimeCollection with every error gathered by panic-mode
// recovery.
func Compile(fileName, source string, module *object.Module, interner *value.Interner) (*object.Function, error) {
	c := &Compiler{
		lex:      lexer.New(source),
		module:   module,
		interner: interner,
		fileName: fileName,
		source:   source,
	}
	c.pushState(typeScript, "")

	c.advance()
	for !c.match(lexer.KindEOF) {
		c.declaration()
	}

	fn := c.popState()
	if !c.errs.IsEmpty() {
		return nil, &c.errs
	}
	return fn, nil
}

func (c *Compiler) pushState(typ functionType, name string) {
	st := &state{
		enclosing: c.st,
		fn:        object.NewFunction(name, c.module),
		fnType:    typ,
	}
	// Slot 0 of every call frame is reserved (the running function itself);
	// recording it as a local keeps resolveLocal's bookkeeping uniform.
	st.locals = append(st.locals, local{name: "", depth: 0})
	c.st = st
}

// popState closes the current function body (emitting the implicit trailing
// `nil; return`) and restores the enclosing state.
func (c *Compiler) popState() *object.Function {
	c.emitReturn()
	fn := c.st.fn
	c.st = c.st.enclosing
	return fn
}

func (c *Compiler) chunk() *bytecode.Chunk {
	return &c.st.fn.Chunk
}

//
// Token stream
//

func (c *Compiler) advance() {
	c.prev = c.cur
	for {
		c.cur = c.lex.Token()
		if c.cur.Kind != lexer.KindError {
			break
		}
		c.errorAtCurrent(c.cur.Lexeme)
	}
}

func (c *Compiler) check(kind lexer.Kind) bool {
	return c.cur.Kind == kind
}

func (c *Compiler) match(kind lexer.Kind) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

func (c *Compiler) consume(kind lexer.Kind, message string) {
	if c.cur.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

//
// Error reporting
//

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.cur, message)
}

func (c *Compiler) error(message string) {
	c.errorAt(c.prev, message)
}

func (c *Compiler) errorAt(tok lexer.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	lexeme := tok.Lexeme
	if tok.Kind == lexer.KindEOF {
		lexeme = "end of file"
	}
	e := errs.NewCompileTime(c.fileName, tok.Line, "%s", message)
	e.Lexeme = lexeme
	c.errs.Add(e)
}

// synchronize resynchronizes the parser after an error, skipping tokens
// until a semicolon has just been consumed or the next token starts a new
// declaration/statement.
func (c *Compiler) synchronize() {
	c.panicMode = false

	for c.cur.Kind != lexer.KindEOF {
		if c.prev.Kind == lexer.KindSemicolon {
			return
		}
		switch c.cur.Kind {
		case lexer.KindClass, lexer.KindFun, lexer.KindVar, lexer.KindFor,
			lexer.KindIf, lexer.KindWhile, lexer.KindPrint, lexer.KindReturn,
			lexer.KindImport, lexer.KindExport:
			return
		}
		c.advance()
	}
}

//
// Bytecode emission helpers
//

func (c *Compiler) emitByte(b byte) {
	c.chunk().WriteByte(b, c.prev.Line)
}

func (c *Compiler) emitOp(op bytecode.OpCode) {
	c.chunk().WriteOp(op, c.prev.Line)
}

func (c *Compiler) emitOpByte(op bytecode.OpCode, b byte) {
	c.emitOp(op)
	c.emitByte(b)
}

func (c *Compiler) emitLoop(loopStart int) {
	c.emitOp(bytecode.OpLoop)

	offset := c.chunk().Len() - loopStart + 2
	if offset > math.MaxUint16 {
		c.error("Loop body too large.")
	}
	c.emitByte(byte(offset >> 8))
	c.emitByte(byte(offset))
}

// emitJump emits a jump instruction with a placeholder 16-bit offset and
// returns the offset of the first placeholder byte, to be patched later.
func (c *Compiler) emitJump(op bytecode.OpCode) int {
	c.emitOp(op)
	c.emitByte(0xff)
	c.emitByte(0xff)
	return c.chunk().Len() - 2
}

// patchJump backpatches the jump at offset to land on the current
// instruction pointer.
func (c *Compiler) patchJump(offset int) {
	jump := c.chunk().Len() - offset - 2
	if jump > math.MaxUint16 {
		c.error("Too much code to jump over.")
	}
	c.chunk().Code[offset] = byte(jump >> 8)
	c.chunk().Code[offset+1] = byte(jump)
}

func (c *Compiler) emitReturn() {
	c.emitOp(bytecode.OpNil)
	c.emitOp(bytecode.OpReturn)
}

// makeConstant adds v to the current chunk's constant pool and returns its
// index, reporting an error (and returning 0) if the pool is full.
func (c *Compiler) makeConstant(v value.Value) byte {
	idx := c.chunk().AddConstant(v)
	if idx < 0 {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(idx)
}

func (c *Compiler) emitConstant(v value.Value) {
	c.emitOpByte(bytecode.OpConstant, c.makeConstant(v))
}

//
// Scopes
//

func (c *Compiler) beginScope() { c.st.scopeDep++ }

func (c *Compiler) endScope() {
	c.st.scopeDep--
	for len(c.st.locals) > 0 && c.st.locals[len(c.st.locals)-1].depth > c.st.scopeDep {
		c.emitOp(bytecode.OpPop)
		c.st.locals = c.st.locals[:len(c.st.locals)-1]
	}
}

//
// Numbers and strings
//

func parseNumber(lexeme string) value.Value {
	n, _ := strconv.ParseFloat(lexeme, 64)
	return value.Number(n)
}

// stringLexeme strips the surrounding quotes from a string-literal lexeme.
func stringLexeme(lexeme string) string {
	if len(lexeme) < 2 {
		return ""
	}
	return lexeme[1 : len(lexeme)-1]
}

// newInternedString interns chars through c's shared Interner and wraps it
// as a constant-pool Value.
func newInternedString(c *Compiler, chars string) value.Value {
	return value.FromObject(c.interner.Intern(chars))
}

// identifierConstant adds name's lexeme (interned) to the constant pool,
// for use as the operand of a GET/SET/DEFINE_GLOBAL or EXPORT instruction.
func (c *Compiler) identifierConstant(name lexer.Token) byte {
	return c.makeConstant(newInternedString(c, name.Lexeme))
}
