package walk

import (
	"bytes"
	"testing"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run("<test>", source, &out)
	if err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("expected %q, got %q", "7\n", out)
	}
}

func TestVariablesAndScope(t *testing.T) {
	out, err := run(t, `
var x = 10;
{
    var x = 20;
    print x;
}
print x;
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "20\n10\n" {
		t.Fatalf("expected %q, got %q", "20\n10\n", out)
	}
}

func TestIfElse(t *testing.T) {
	out, err := run(t, `
if (1 < 2) {
    print "yes";
} else {
    print "no";
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "yes\n" {
		t.Fatalf("expected %q, got %q", "yes\n", out)
	}
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
var i = 0;
while (i < 3) {
    print i;
    i = i + 1;
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("expected %q, got %q", "0\n1\n2\n", out)
	}
}

func TestFunctionsAndClosures(t *testing.T) {
	out, err := run(t, `
fun makeAdder(n) {
    fun adder(x) {
        return x + n;
    }
    return adder;
}
var add5 = makeAdder(5);
print add5(10);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("expected %q, got %q", "15\n", out)
	}
}

func TestRecursion(t *testing.T) {
	out, err := run(t, `
fun fact(n) {
    if (n <= 1) {
        return 1;
    }
    return n * fact(n - 1);
}
print fact(5);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "120\n" {
		t.Fatalf("expected %q, got %q", "120\n", out)
	}
}

func TestFunctionFallsOffEndReturnsNil(t *testing.T) {
	out, err := run(t, `
fun noop() {
    var x = 1;
}
print noop();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "nil\n" {
		t.Fatalf("expected %q, got %q", "nil\n", out)
	}
}

func TestParseErrorIsReported(t *testing.T) {
	_, err := run(t, `var x = ;`)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestAssignToUndeclaredVariableFaults(t *testing.T) {
	_, err := run(t, `x = 1;`)
	if err == nil {
		t.Fatalf("expected an undeclared-assignment fault")
	}
}

func TestCallingNonFunctionFaults(t *testing.T) {
	_, err := run(t, `
var x = 1;
x();
`)
	if err == nil {
		t.Fatalf("expected a not-callable fault")
	}
}
