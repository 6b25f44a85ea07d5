package lexer

import "testing"

func TestTokenKinds(t *testing.T) {
	input := `( ) { } [ ] , . ; - + / * % ! != = == > >= < <=`

	tests := []struct {
		kind   Kind
		lexeme string
	}{
		{KindLeftParen, "("},
		{KindRightParen, ")"},
		{KindLeftBrace, "{"},
		{KindRightBrace, "}"},
		{KindLeftBracket, "["},
		{KindRightBracket, "]"},
		{KindComma, ","},
		{KindDot, "."},
		{KindSemicolon, ";"},
		{KindMinus, "-"},
		{KindPlus, "+"},
		{KindSlash, "/"},
		{KindStar, "*"},
		{KindPercent, "%"},
		{KindBang, "!"},
		{KindBangEqual, "!="},
		{KindEqual, "="},
		{KindEqualEqual, "=="},
		{KindGreater, ">"},
		{KindGreaterEqual, ">="},
		{KindLess, "<"},
		{KindLessEqual, "<="},
		{KindEOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Token()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d]: kind wrong. expected=%v, got=%v", i, tt.kind, tok.Kind)
		}
		if tok.Lexeme != tt.lexeme {
			t.Fatalf("tests[%d]: lexeme wrong. expected=%q, got=%q", i, tt.lexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and class else false for fun if nil or print return super this true var while export import notakeyword`

	tests := []Kind{
		KindAnd, KindClass, KindElse, KindFalse, KindFor, KindFun, KindIf,
		KindNil, KindOr, KindPrint, KindReturn, KindSuper, KindThis, KindTrue,
		KindVar, KindWhile, KindExport, KindImport, KindIdentifier,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.Token()
		if tok.Kind != want {
			t.Fatalf("tests[%d]: expected=%v, got=%v (%q)", i, want, tok.Kind, tok.Lexeme)
		}
	}
}

func TestStringAndNumberLiterals(t *testing.T) {
	input := `"hello world" 3.14 42`

	l := New(input)

	tok := l.Token()
	if tok.Kind != KindString || tok.Lexeme != `"hello world"` {
		t.Fatalf("string literal wrong: %+v", tok)
	}

	tok = l.Token()
	if tok.Kind != KindNumber || tok.Lexeme != "3.14" {
		t.Fatalf("float literal wrong: %+v", tok)
	}

	tok = l.Token()
	if tok.Kind != KindNumber || tok.Lexeme != "42" {
		t.Fatalf("int literal wrong: %+v", tok)
	}
}

func TestLineTracking(t *testing.T) {
	input := "var a = 1;\nvar b = 2;\n"

	l := New(input)
	var lastLine int
	for {
		tok := l.Token()
		if tok.Kind == KindEOF {
			lastLine = tok.Line
			break
		}
		if tok.Lexeme == "b" && tok.Line != 2 {
			t.Fatalf("expected 'b' on line 2, got line %d", tok.Line)
		}
	}
	if lastLine != 3 {
		t.Fatalf("expected EOF on line 3, got %d", lastLine)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.Token()
	if tok.Kind != KindError {
		t.Fatalf("expected KindError for unterminated string, got %v", tok.Kind)
	}
}
