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

// precedence orders FLS's binary operators from loosest to tightest
// binding; parsePrecedence climbs this ladder to implement Pratt parsing.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * / %
	precUnary                 // ! -
	precCall                  // ( [
	precPrimary
)

// parseFn parses one prefix or infix expression form. canAssign tells it
// whether an `=` immediately following is a valid assignment target here
// (it isn't, e.g., inside `a + b = c`).
type parseFn func(c *Compiler, canAssign bool)

type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

var rules map[lexer.Kind]rule

func init() {
	rules = map[lexer.Kind]rule{
		lexer.KindLeftParen:    {(*Compiler).grouping, (*Compiler).call, precCall},
		lexer.KindLeftBracket:  {(*Compiler).listLiteral, (*Compiler).subscript, precCall},
		lexer.KindMinus:        {(*Compiler).unary, (*Compiler).binary, precTerm},
		lexer.KindPlus:         {nil, (*Compiler).binary, precTerm},
		lexer.KindSlash:        {nil, (*Compiler).binary, precFactor},
		lexer.KindStar:         {nil, (*Compiler).binary, precFactor},
		lexer.KindPercent:      {nil, (*Compiler).binary, precFactor},
		lexer.KindBang:         {(*Compiler).unary, nil, precNone},
		lexer.KindBangEqual:    {nil, (*Compiler).binary, precEquality},
		lexer.KindEqualEqual:   {nil, (*Compiler).binary, precEquality},
		lexer.KindGreater:      {nil, (*Compiler).binary, precComparison},
		lexer.KindGreaterEqual: {nil, (*Compiler).binary, precComparison},
		lexer.KindLess:         {nil, (*Compiler).binary, precComparison},
		lexer.KindLessEqual:    {nil, (*Compiler).binary, precComparison},
		lexer.KindIdentifier:   {(*Compiler).variable, nil, precNone},
		lexer.KindString:       {(*Compiler).stringLiteral, nil, precNone},
		lexer.KindNumber:       {(*Compiler).number, nil, precNone},
		lexer.KindAnd:          {nil, (*Compiler).and, precAnd},
		lexer.KindOr:           {nil, (*Compiler).or, precOr},
		lexer.KindFalse:        {(*Compiler).literal, nil, precNone},
		lexer.KindNil:          {(*Compiler).literal, nil, precNone},
		lexer.KindTrue:         {(*Compiler).literal, nil, precNone},
	}
}

func getRule(kind lexer.Kind) rule {
	return rules[kind]
}

// parsePrecedence parses and emits code for the expression starting at the
// current token, consuming any infix operators that bind at least as
// tightly as minPrec.
func (c *Compiler) parsePrecedence(minPrec precedence) {
	c.advance()
	prefix := getRule(c.prev.Kind).prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}

	canAssign := minPrec <= precAssignment
	prefix(c, canAssign)

	for minPrec <= getRule(c.cur.Kind).precedence {
		c.advance()
		infix := getRule(c.prev.Kind).infix
		infix(c, canAssign)
	}

	if canAssign && c.match(lexer.KindEqual) {
		c.error("Invalid assignment target.")
	}
}

func (c *Compiler) expression() {
	c.parsePrecedence(precAssignment)
}

//
// Prefix and infix parse functions
//

func (c *Compiler) grouping(canAssign bool) {
	c.expression()
	c.consume(lexer.KindRightParen, "Expect ')' after expression.")
}

func (c *Compiler) number(canAssign bool) {
	c.emitConstant(parseNumber(c.prev.Lexeme))
}

func (c *Compiler) stringLiteral(canAssign bool) {
	s := newInternedString(c, stringLexeme(c.prev.Lexeme))
	c.emitConstant(s)
}

func (c *Compiler) literal(canAssign bool) {
	switch c.prev.Kind {
	case lexer.KindFalse:
		c.emitOp(bytecode.OpFalse)
	case lexer.KindNil:
		c.emitOp(bytecode.OpNil)
	case lexer.KindTrue:
		c.emitOp(bytecode.OpTrue)
	}
}

func (c *Compiler) unary(canAssign bool) {
	opKind := c.prev.Kind
	c.parsePrecedence(precUnary)

	switch opKind {
	case lexer.KindBang:
		c.emitOp(bytecode.OpNot)
	case lexer.KindMinus:
		c.emitOp(bytecode.OpNegate)
	}
}

func (c *Compiler) binary(canAssign bool) {
	opKind := c.prev.Kind
	r := getRule(opKind)
	c.parsePrecedence(r.precedence + 1)

	switch opKind {
	case lexer.KindBangEqual:
		c.emitOp(bytecode.OpEqual)
		c.emitOp(bytecode.OpNot)
	case lexer.KindEqualEqual:
		c.emitOp(bytecode.OpEqual)
	case lexer.KindGreater:
		c.emitOp(bytecode.OpGreater)
	case lexer.KindGreaterEqual:
		c.emitOp(bytecode.OpLess)
		c.emitOp(bytecode.OpNot)
	case lexer.KindLess:
		c.emitOp(bytecode.OpLess)
	case lexer.KindLessEqual:
		c.emitOp(bytecode.OpGreater)
		c.emitOp(bytecode.OpNot)
	case lexer.KindPlus:
		c.emitOp(bytecode.OpAdd)
	case lexer.KindMinus:
		c.emitOp(bytecode.OpSubtract)
	case lexer.KindStar:
		c.emitOp(bytecode.OpMultiply)
	case lexer.KindSlash:
		c.emitOp(bytecode.OpDivide)
	case lexer.KindPercent:
		c.emitOp(bytecode.OpModulo)
	}
}

func (c *Compiler) and(canAssign bool) {
	endJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitOp(bytecode.OpPop)
	c.parsePrecedence(precAnd)
	c.patchJump(endJump)
}

func (c *Compiler) or(canAssign bool) {
	elseJump := c.emitJump(bytecode.OpJumpIfFalse)
	endJump := c.emitJump(bytecode.OpJump)

	c.patchJump(elseJump)
	c.emitOp(bytecode.OpPop)

	c.parsePrecedence(precOr)
	c.patchJump(endJump)
}

func (c *Compiler) call(canAssign bool) {
	argc := c.argumentList()
	c.emitOpByte(bytecode.OpCall, argc)
}

func (c *Compiler) argumentList() byte {
	var argc int
	if !c.check(lexer.KindRightParen) {
		for {
			c.expression()
			if argc == 255 {
				c.error("Can't have more than 255 arguments.")
			}
			argc++
			if !c.match(lexer.KindComma) {
				break
			}
		}
	}
	c.consume(lexer.KindRightParen, "Expect ')' after arguments.")
	return byte(argc)
}

func (c *Compiler) listLiteral(canAssign bool) {
	c.emitOp(bytecode.OpNewList)
	if !c.check(lexer.KindRightBracket) {
		for {
			c.expression()
			c.emitOp(bytecode.OpListAppend)
			if !c.match(lexer.KindComma) {
				break
			}
		}
	}
	c.consume(lexer.KindRightBracket, "Expect ']' after list literal.")
}

func (c *Compiler) subscript(canAssign bool) {
	c.expression()
	c.consume(lexer.KindRightBracket, "Expect ']' after subscript.")

	if canAssign && c.match(lexer.KindEqual) {
		c.expression()
		c.emitOp(bytecode.OpSetSubscript)
	} else {
		c.emitOp(bytecode.OpGetSubscript)
	}
}

func (c *Compiler) variable(canAssign bool) {
	c.namedVariable(c.prev, canAssign)
}

func (c *Compiler) namedVariable(name lexer.Token, canAssign bool) {
	var getOp, setOp bytecode.OpCode
	arg, ok := c.resolveLocal(name)
	if ok {
		getOp, setOp = bytecode.OpGetLocal, bytecode.OpSetLocal
	} else {
		arg = c.identifierConstant(name)
		getOp, setOp = bytecode.OpGetGlobal, bytecode.OpSetGlobal
	}

	if canAssign && c.match(lexer.KindEqual) {
		c.expression()
		c.emitOpByte(setOp, arg)
	} else {
		c.emitOpByte(getOp, arg)
	}
}
