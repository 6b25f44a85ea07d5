/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package walk

import (
	"strconv"

	"github.com/flslang/fls/pkg/ast"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/lexer"
)

// Parser is a plain recursive-descent parser for the subset of FLS grammar
// the walk backend supports: declarations, var/if/while/print/return/block
// statements, and the usual expression grammar minus lists and subscripts.
// Deliberately simpler than pkg/compiler's Pratt parser -- pkg/walk is a
// secondary, diagnostic backend, not the primary compiler, so it trades the
// generality of a precedence table for a handful of directly-recursive
// precedence levels.
type Parser struct {
	fileName string
	lex      *lexer.Lexer
	cur      lexer.Token
	prev     lexer.Token
	errs     errs.CompileTimeCollection
	panic    bool
}

// NewParser returns a Parser ready to parse source.
func NewParser(fileName, source string) *Parser {
	p := &Parser{fileName: fileName, lex: lexer.New(source)}
	p.advance()
	return p
}

// Parse parses the whole program, returning its top-level statements. Even
// on error, it returns whatever statements were recovered, alongside the
// collected errors.
func (p *Parser) Parse() ([]ast.Node, *errs.CompileTimeCollection) {
	var stmts []ast.Node
	for !p.check(lexer.KindEOF) {
		stmts = append(stmts, p.declaration())
	}
	if p.errs.IsEmpty() {
		return stmts, nil
	}
	return stmts, &p.errs
}

//
// Token plumbing
//

func (p *Parser) advance() {
	p.prev = p.cur
	for {
		p.cur = p.lex.Token()
		if p.cur.Kind != lexer.KindError {
			break
		}
		p.errAt(p.cur, p.cur.Lexeme)
	}
}

func (p *Parser) check(k lexer.Kind) bool {
	return p.cur.Kind == k
}

func (p *Parser) match(k lexer.Kind) bool {
	if !p.check(k) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(k lexer.Kind, message string) lexer.Token {
	if p.check(k) {
		tok := p.cur
		p.advance()
		return tok
	}
	p.errAt(p.cur, message)
	return p.cur
}

func (p *Parser) errAt(tok lexer.Token, message string) {
	if p.panic {
		return
	}
	p.panic = true
	p.errs.Add(errs.NewCompileTime(p.fileName, tok.Line, "%s", message))
}

// synchronize skips tokens until it finds one that plausibly starts a new
// statement, so one mistake doesn't cascade into a wall of errors.
func (p *Parser) synchronize() {
	p.panic = false
	for !p.check(lexer.KindEOF) {
		if p.prev.Kind == lexer.KindSemicolon {
			return
		}
		switch p.cur.Kind {
		case lexer.KindFun, lexer.KindVar, lexer.KindFor, lexer.KindIf,
			lexer.KindWhile, lexer.KindPrint, lexer.KindReturn:
			return
		}
		p.advance()
	}
}

//
// Declarations and statements
//

func (p *Parser) declaration() ast.Node {
	var n ast.Node
	switch {
	case p.match(lexer.KindFun):
		n = p.function()
	case p.match(lexer.KindVar):
		n = p.varDeclaration()
	default:
		n = p.statement()
	}
	if p.panic {
		p.synchronize()
	}
	return n
}

func (p *Parser) function() ast.Node {
	line := p.cur.Line
	name := p.consume(lexer.KindIdentifier, "Expect function name.").Lexeme

	p.consume(lexer.KindLeftParen, "Expect '(' after function name.")
	var params []string
	if !p.check(lexer.KindRightParen) {
		for {
			params = append(params, p.consume(lexer.KindIdentifier, "Expect parameter name.").Lexeme)
			if !p.match(lexer.KindComma) {
				break
			}
		}
	}
	p.consume(lexer.KindRightParen, "Expect ')' after parameters.")
	p.consume(lexer.KindLeftBrace, "Expect '{' before function body.")
	body := p.block()

	return &ast.FunctionStmt{
		BaseNode: ast.BaseNode{LineNumber: line},
		Name:     name,
		Params:   params,
		Body:     body,
	}
}

func (p *Parser) varDeclaration() ast.Node {
	line := p.cur.Line
	name := p.consume(lexer.KindIdentifier, "Expect variable name.").Lexeme

	var init ast.Node
	if p.match(lexer.KindEqual) {
		init = p.expression()
	}
	p.consume(lexer.KindSemicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{BaseNode: ast.BaseNode{LineNumber: line}, Name: name, Initializer: init}
}

func (p *Parser) statement() ast.Node {
	switch {
	case p.match(lexer.KindPrint):
		return p.printStatement()
	case p.match(lexer.KindIf):
		return p.ifStatement()
	case p.match(lexer.KindReturn):
		return p.returnStatement()
	case p.match(lexer.KindWhile):
		return p.whileStatement()
	case p.match(lexer.KindLeftBrace):
		line := p.prev.Line
		return &ast.BlockStmt{BaseNode: ast.BaseNode{LineNumber: line}, Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Node {
	var stmts []ast.Node
	for !p.check(lexer.KindRightBrace) && !p.check(lexer.KindEOF) {
		stmts = append(stmts, p.declaration())
	}
	p.consume(lexer.KindRightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) printStatement() ast.Node {
	line := p.prev.Line
	expr := p.expression()
	p.consume(lexer.KindSemicolon, "Expect ';' after value.")
	return &ast.PrintStmt{BaseNode: ast.BaseNode{LineNumber: line}, Expression: expr}
}

func (p *Parser) expressionStatement() ast.Node {
	line := p.cur.Line
	expr := p.expression()
	p.consume(lexer.KindSemicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{BaseNode: ast.BaseNode{LineNumber: line}, Expression: expr}
}

func (p *Parser) returnStatement() ast.Node {
	line := p.prev.Line
	var val ast.Node
	if !p.check(lexer.KindSemicolon) {
		val = p.expression()
	}
	p.consume(lexer.KindSemicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{BaseNode: ast.BaseNode{LineNumber: line}, Value: val}
}

func (p *Parser) ifStatement() ast.Node {
	line := p.prev.Line
	p.consume(lexer.KindLeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.KindRightParen, "Expect ')' after condition.")

	then := p.statement()
	var els ast.Node
	if p.match(lexer.KindElse) {
		els = p.statement()
	}
	return &ast.IfStmt{BaseNode: ast.BaseNode{LineNumber: line}, Condition: cond, Then: then, Else: els}
}

func (p *Parser) whileStatement() ast.Node {
	line := p.prev.Line
	p.consume(lexer.KindLeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.KindRightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{BaseNode: ast.BaseNode{LineNumber: line}, Condition: cond, Body: body}
}

//
// Expressions, loosest to tightest binding: assignment, or, and, equality,
// comparison, term, factor, unary, call, primary.
//

func (p *Parser) expression() ast.Node {
	return p.assignment()
}

func (p *Parser) assignment() ast.Node {
	expr := p.or()

	if p.match(lexer.KindEqual) {
		line := p.prev.Line
		value := p.assignment()
		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{BaseNode: ast.BaseNode{LineNumber: line}, Name: v.Name, Value: value}
		}
		p.errAt(p.prev, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Node {
	expr := p.and()
	for p.match(lexer.KindOr) {
		line := p.prev.Line
		right := p.and()
		expr = &ast.LogicalExpr{BaseNode: ast.BaseNode{LineNumber: line}, Left: expr, Operator: "or", Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Node {
	expr := p.equality()
	for p.match(lexer.KindAnd) {
		line := p.prev.Line
		right := p.equality()
		expr = &ast.LogicalExpr{BaseNode: ast.BaseNode{LineNumber: line}, Left: expr, Operator: "and", Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Node {
	expr := p.comparison()
	for p.match(lexer.KindBangEqual) || p.match(lexer.KindEqualEqual) {
		op := p.prev
		right := p.comparison()
		expr = &ast.BinaryExpr{BaseNode: ast.BaseNode{LineNumber: op.Line}, Left: expr, Operator: op.Lexeme, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Node {
	expr := p.term()
	for p.match(lexer.KindGreater) || p.match(lexer.KindGreaterEqual) ||
		p.match(lexer.KindLess) || p.match(lexer.KindLessEqual) {
		op := p.prev
		right := p.term()
		expr = &ast.BinaryExpr{BaseNode: ast.BaseNode{LineNumber: op.Line}, Left: expr, Operator: op.Lexeme, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Node {
	expr := p.factor()
	for p.match(lexer.KindPlus) || p.match(lexer.KindMinus) {
		op := p.prev
		right := p.factor()
		expr = &ast.BinaryExpr{BaseNode: ast.BaseNode{LineNumber: op.Line}, Left: expr, Operator: op.Lexeme, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Node {
	expr := p.unary()
	for p.match(lexer.KindStar) || p.match(lexer.KindSlash) || p.match(lexer.KindPercent) {
		op := p.prev
		right := p.unary()
		expr = &ast.BinaryExpr{BaseNode: ast.BaseNode{LineNumber: op.Line}, Left: expr, Operator: op.Lexeme, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Node {
	if p.match(lexer.KindBang) || p.match(lexer.KindMinus) {
		op := p.prev
		operand := p.unary()
		return &ast.UnaryExpr{BaseNode: ast.BaseNode{LineNumber: op.Line}, Operator: op.Lexeme, Operand: operand}
	}
	return p.call()
}

func (p *Parser) call() ast.Node {
	expr := p.primary()
	for p.match(lexer.KindLeftParen) {
		line := p.prev.Line
		var args []ast.Node
		if !p.check(lexer.KindRightParen) {
			for {
				args = append(args, p.expression())
				if !p.match(lexer.KindComma) {
					break
				}
			}
		}
		p.consume(lexer.KindRightParen, "Expect ')' after arguments.")
		expr = &ast.CallExpr{BaseNode: ast.BaseNode{LineNumber: line}, Callee: expr, Arguments: args}
	}
	return expr
}

func (p *Parser) primary() ast.Node {
	switch {
	case p.match(lexer.KindFalse):
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{LineNumber: p.prev.Line}, Value: false}
	case p.match(lexer.KindTrue):
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{LineNumber: p.prev.Line}, Value: true}
	case p.match(lexer.KindNil):
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{LineNumber: p.prev.Line}, Value: nil}
	case p.match(lexer.KindNumber):
		n, _ := strconv.ParseFloat(p.prev.Lexeme, 64)
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{LineNumber: p.prev.Line}, Value: n}
	case p.match(lexer.KindString):
		s := p.prev.Lexeme
		if len(s) >= 2 {
			s = s[1 : len(s)-1]
		}
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{LineNumber: p.prev.Line}, Value: s}
	case p.match(lexer.KindIdentifier):
		return &ast.VariableExpr{BaseNode: ast.BaseNode{LineNumber: p.prev.Line}, Name: p.prev.Lexeme}
	case p.match(lexer.KindLeftParen):
		line := p.prev.Line
		expr := p.expression()
		p.consume(lexer.KindRightParen, "Expect ')' after expression.")
		return &ast.GroupingExpr{BaseNode: ast.BaseNode{LineNumber: line}, Expression: expr}
	default:
		p.errAt(p.cur, "Expect expression.")
		p.advance()
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{LineNumber: p.cur.Line}, Value: nil}
	}
}
