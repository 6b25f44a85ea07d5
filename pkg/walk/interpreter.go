/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package walk

import (
	"fmt"
	"io"

	"github.com/flslang/fls/pkg/ast"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/value"
)

// returnSignal unwinds the Go call stack back to the call site of the FLS
// function currently running, carrying its return value. Not a user-visible
// error -- just how a plain recursive-descent evaluator implements
// non-local exit, mirroring how the bytecode VM's OP_RETURN pops a call
// frame instead of falling off the end of execute's recursion.
type returnSignal struct {
	value value.Value
}

func (returnSignal) Error() string { return "return outside of function" }

// Interpreter walks an FLS AST directly, evaluating as it goes -- no
// compilation, no bytecode, no preflight profiler. A plain recursive-descent
// type-switch evaluator (execute/evaluate switching on concrete node types)
// using value.Value as its runtime representation, same as the bytecode VM.
type Interpreter struct {
	globals *Environment
	env     *Environment
	out     io.Writer
}

// NewInterpreter returns an Interpreter that prints to out.
func NewInterpreter(out io.Writer) *Interpreter {
	g := NewEnvironment(nil)
	return &Interpreter{globals: g, env: g, out: out}
}

// Run interprets program's top-level statements in order.
func (i *Interpreter) Run(program []ast.Node) errs.Error {
	for _, stmt := range program {
		if err := i.execute(stmt); err != nil {
			if rErr, ok := err.(errs.Error); ok {
				return rErr
			}
			return errs.NewRuntime("%s", err.Error())
		}
	}
	return nil
}

//
// Statements
//

func (i *Interpreter) execute(stmt ast.Node) error {
	switch n := stmt.(type) {
	case *ast.BlockStmt:
		return i.executeBlock(n.Statements, NewEnvironment(i.env))

	case *ast.ExpressionStmt:
		_, err := i.evaluate(n.Expression)
		return err

	case *ast.FunctionStmt:
		i.env.Define(n.Name, value.FromObject(NewClosure(n, i.env)))
		return nil

	case *ast.IfStmt:
		cond, err := i.evaluate(n.Condition)
		if err != nil {
			return err
		}
		if cond.IsTruthy() {
			return i.execute(n.Then)
		} else if n.Else != nil {
			return i.execute(n.Else)
		}
		return nil

	case *ast.PrintStmt:
		v, err := i.evaluate(n.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, v.String())
		return nil

	case *ast.ReturnStmt:
		var v value.Value = value.Nil
		if n.Value != nil {
			var err error
			v, err = i.evaluate(n.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}

	case *ast.VarStmt:
		v := value.Nil
		if n.Initializer != nil {
			var err error
			v, err = i.evaluate(n.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(n.Name, v)
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(n.Condition)
			if err != nil {
				return err
			}
			if !cond.IsTruthy() {
				return nil
			}
			if err := i.execute(n.Body); err != nil {
				return err
			}
		}

	default:
		return errs.NewRuntime("unknown statement type: %T", stmt)
	}
}

func (i *Interpreter) executeBlock(stmts []ast.Node, env *Environment) error {
	prev := i.env
	i.env = env
	defer func() { i.env = prev }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

//
// Expressions
//

func (i *Interpreter) evaluate(expr ast.Node) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(n.Value), nil

	case *ast.GroupingExpr:
		return i.evaluate(n.Expression)

	case *ast.VariableExpr:
		v, ok := i.env.Get(n.Name)
		if !ok {
			return value.Nil, errs.NewRuntime("Undefined variable '%s'.", n.Name)
		}
		return v, nil

	case *ast.AssignExpr:
		v, err := i.evaluate(n.Value)
		if err != nil {
			return value.Nil, err
		}
		if !i.env.Assign(n.Name, v) {
			return value.Nil, errs.NewRuntime("Undefined variable '%s'.", n.Name)
		}
		return v, nil

	case *ast.UnaryExpr:
		return i.evalUnary(n)

	case *ast.BinaryExpr:
		return i.evalBinary(n)

	case *ast.LogicalExpr:
		return i.evalLogical(n)

	case *ast.CallExpr:
		return i.evalCall(n)

	default:
		return value.Nil, errs.NewRuntime("unknown expression type: %T", expr)
	}
}

func literalValue(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Nil
	case bool:
		return value.Bool(t)
	case float64:
		return value.Number(t)
	case string:
		return value.FromObject(value.NewString(t))
	default:
		return value.Nil
	}
}

func (i *Interpreter) evalUnary(n *ast.UnaryExpr) (value.Value, error) {
	v, err := i.evaluate(n.Operand)
	if err != nil {
		return value.Nil, err
	}
	switch n.Operator {
	case "-":
		if !v.IsNumber() {
			return value.Nil, errs.NewRuntime("Operand must be a number.")
		}
		return value.Number(-v.AsNumber()), nil
	case "!":
		return value.Bool(!v.IsTruthy()), nil
	default:
		return value.Nil, errs.NewRuntime("unknown unary operator: %s", n.Operator)
	}
}

func (i *Interpreter) evalLogical(n *ast.LogicalExpr) (value.Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return value.Nil, err
	}
	if n.Operator == "or" {
		if left.IsTruthy() {
			return left, nil
		}
	} else {
		if !left.IsTruthy() {
			return left, nil
		}
	}
	return i.evaluate(n.Right)
}

func (i *Interpreter) evalBinary(n *ast.BinaryExpr) (value.Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return value.Nil, err
	}
	right, err := i.evaluate(n.Right)
	if err != nil {
		return value.Nil, err
	}

	switch n.Operator {
	case "==":
		return value.Bool(value.Equal(left, right)), nil
	case "!=":
		return value.Bool(!value.Equal(left, right)), nil
	}

	if left.IsString() && right.IsString() && n.Operator == "+" {
		return value.FromObject(value.NewString(left.AsString().Chars + right.AsString().Chars)), nil
	}

	if !left.IsNumber() || !right.IsNumber() {
		return value.Nil, errs.NewRuntime("Operands must be numbers.")
	}
	a, b := left.AsNumber(), right.AsNumber()

	switch n.Operator {
	case "+":
		return value.Number(a + b), nil
	case "-":
		return value.Number(a - b), nil
	case "*":
		return value.Number(a * b), nil
	case "/":
		if b == 0 {
			return value.Nil, errs.NewRuntime("Division by zero.")
		}
		return value.Number(a / b), nil
	case "%":
		if b == 0 {
			return value.Nil, errs.NewRuntime("Division by zero.")
		}
		return value.Number(float64(int64(a) % int64(b))), nil
	case ">":
		return value.Bool(a > b), nil
	case ">=":
		return value.Bool(a >= b), nil
	case "<":
		return value.Bool(a < b), nil
	case "<=":
		return value.Bool(a <= b), nil
	default:
		return value.Nil, errs.NewRuntime("unknown binary operator: %s", n.Operator)
	}
}

func (i *Interpreter) evalCall(n *ast.CallExpr) (value.Value, error) {
	callee, err := i.evaluate(n.Callee)
	if err != nil {
		return value.Nil, err
	}

	args := make([]value.Value, len(n.Arguments))
	for idx, argExpr := range n.Arguments {
		v, err := i.evaluate(argExpr)
		if err != nil {
			return value.Nil, err
		}
		args[idx] = v
	}

	if !callee.IsObject() {
		return value.Nil, errs.NewRuntime("Can only call functions.")
	}
	closure, ok := callee.AsObject().(*Closure)
	if !ok {
		return value.Nil, errs.NewRuntime("Can only call functions.")
	}
	if len(args) != len(closure.Decl.Params) {
		return value.Nil, errs.NewRuntime("Expected %d arguments but got %d.", len(closure.Decl.Params), len(args))
	}

	callEnv := NewEnvironment(closure.Env)
	for idx, param := range closure.Decl.Params {
		callEnv.Define(param, args[idx])
	}

	err = i.executeBlock(closure.Decl.Body, callEnv)
	if rs, ok := err.(returnSignal); ok {
		return rs.value, nil
	}
	if err != nil {
		return value.Nil, err
	}
	return value.Nil, nil
}
