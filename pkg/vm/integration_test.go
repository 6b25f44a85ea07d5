/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/vm"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := vm.Interpret("<test>", source, &out, nil, false, func(*vm.VM) {})
	return out.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestGlobalsAndLocals(t *testing.T) {
	out, err := run(t, `
var x = 10;
{
    var x = 20;
    print x;
}
print x;
`)
	require.NoError(t, err)
	assert.Equal(t, "20\n10\n", out)
}

func TestIfElse(t *testing.T) {
	out, err := run(t, `
if (1 < 2) {
    print "yes";
} else {
    print "no";
}
`)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
var i = 0;
while (i < 3) {
    print i;
    i = i + 1;
}
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
fun add(a, b) {
    return a + b;
}
print add(3, 4);
`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
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
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestLists(t *testing.T) {
	out, err := run(t, `
var xs = [1, 2, 3];
print xs[1];
xs[1] = 20;
print xs[1];
`)
	require.NoError(t, err)
	assert.Equal(t, "2\n20\n", out)
}

func TestCompileErrorExitCode(t *testing.T) {
	_, err := run(t, `var x = ;`)
	require.Error(t, err)
	var cerr errs.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, errs.StatusCodeCompileTimeError, cerr.ExitCode())
}

func TestRuntimeErrorExitCode(t *testing.T) {
	_, err := run(t, `print undefinedVariable;`)
	require.Error(t, err)
	var rerr errs.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, errs.StatusCodeRuntimeError, rerr.ExitCode())
}

func TestStackOverflowOnUnboundedRecursion(t *testing.T) {
	_, err := run(t, `
fun loop() {
    return loop();
}
print loop();
`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Stack overflow") || strings.Contains(err.Error(), "stack"),
		"expected a stack-overflow runtime error, got: %v", err)
}
