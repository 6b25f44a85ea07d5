package ast

import "testing"

// recorder is a Visitor that records the node kinds it enters, in order, so
// tests can check a Walk traversal visits exactly the nodes it should.
type recorder struct {
	entered []string
	left    []string
}

func (r *recorder) Enter(n Node) { r.entered = append(r.entered, kindOf(n)) }
func (r *recorder) Leave(n Node) { r.left = append(r.left, kindOf(n)) }

func kindOf(n Node) string {
	switch n.(type) {
	case *AssignExpr:
		return "Assign"
	case *BinaryExpr:
		return "Binary"
	case *CallExpr:
		return "Call"
	case *GroupingExpr:
		return "Grouping"
	case *LiteralExpr:
		return "Literal"
	case *LogicalExpr:
		return "Logical"
	case *UnaryExpr:
		return "Unary"
	case *VariableExpr:
		return "Variable"
	case *BlockStmt:
		return "Block"
	case *ExpressionStmt:
		return "ExpressionStmt"
	case *FunctionStmt:
		return "Function"
	case *IfStmt:
		return "If"
	case *PrintStmt:
		return "Print"
	case *ReturnStmt:
		return "Return"
	case *VarStmt:
		return "Var"
	case *WhileStmt:
		return "While"
	default:
		return "?"
	}
}

func TestBinaryExprWalksBothOperands(t *testing.T) {
	expr := &BinaryExpr{
		Left:     &LiteralExpr{Value: 1.0},
		Operator: "+",
		Right:    &LiteralExpr{Value: 2.0},
	}

	r := &recorder{}
	expr.Walk(r)

	want := []string{"Binary", "Literal", "Literal"}
	if !equal(r.entered, want) {
		t.Fatalf("expected enter order %v, got %v", want, r.entered)
	}
	if len(r.left) != 3 || r.left[len(r.left)-1] != "Binary" {
		t.Fatalf("expected Binary to be left last, got %v", r.left)
	}
}

func TestIfStmtSkipsNilElse(t *testing.T) {
	stmt := &IfStmt{
		Condition: &LiteralExpr{Value: true},
		Then:      &PrintStmt{Expression: &LiteralExpr{Value: "yes"}},
		Else:      nil,
	}

	r := &recorder{}
	stmt.Walk(r)

	want := []string{"If", "Literal", "Print", "Literal"}
	if !equal(r.entered, want) {
		t.Fatalf("expected enter order %v, got %v", want, r.entered)
	}
}

func TestIfStmtWalksElseWhenPresent(t *testing.T) {
	stmt := &IfStmt{
		Condition: &LiteralExpr{Value: false},
		Then:      &PrintStmt{Expression: &LiteralExpr{Value: "yes"}},
		Else:      &PrintStmt{Expression: &LiteralExpr{Value: "no"}},
	}

	r := &recorder{}
	stmt.Walk(r)

	want := []string{"If", "Literal", "Print", "Literal", "Print", "Literal"}
	if !equal(r.entered, want) {
		t.Fatalf("expected enter order %v, got %v", want, r.entered)
	}
}

func TestCallExprWalksCalleeThenArguments(t *testing.T) {
	expr := &CallExpr{
		Callee: &VariableExpr{Name: "f"},
		Arguments: []Node{
			&LiteralExpr{Value: 1.0},
			&LiteralExpr{Value: 2.0},
		},
	}

	r := &recorder{}
	expr.Walk(r)

	want := []string{"Call", "Variable", "Literal", "Literal"}
	if !equal(r.entered, want) {
		t.Fatalf("expected enter order %v, got %v", want, r.entered)
	}
}

func TestVarStmtSkipsNilInitializer(t *testing.T) {
	stmt := &VarStmt{Name: "x", Initializer: nil}

	r := &recorder{}
	stmt.Walk(r)

	if len(r.entered) != 1 || r.entered[0] != "Var" {
		t.Fatalf("expected only the Var node itself to be visited, got %v", r.entered)
	}
}

func TestReturnStmtSkipsNilValue(t *testing.T) {
	stmt := &ReturnStmt{Value: nil}

	r := &recorder{}
	stmt.Walk(r)

	if len(r.entered) != 1 || r.entered[0] != "Return" {
		t.Fatalf("expected only the Return node itself to be visited, got %v", r.entered)
	}
}

func TestBaseNodeLine(t *testing.T) {
	n := &PrintStmt{BaseNode: BaseNode{LineNumber: 42}, Expression: &LiteralExpr{Value: 1.0}}
	if n.Line() != 42 {
		t.Fatalf("expected line 42, got %d", n.Line())
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
