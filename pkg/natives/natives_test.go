package natives_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flslang/fls/pkg/natives"
	"github.com/flslang/fls/pkg/vm"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := vm.Interpret("<test>", source, &out, nil, false, natives.Register)
	return out.String(), err
}

func TestCoreNatives(t *testing.T) {
	out, err := run(t, `
print len("hello");
print toString(42);
print toNum("3.5") + 1;
print isString("x");
`)
	require.NoError(t, err)
	assert.Equal(t, "5\n42\n4.5\ntrue\n", out)
}

func TestPrintlnIsReachableAsACall(t *testing.T) {
	out, err := run(t, `println("hi");`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestStringNatives(t *testing.T) {
	out, err := run(t, `
print startsWith("hello world", "hello");
print endsWith("hello world", "world");
print substring("hello world", 0, 5);
print toUpperCase("abc");
print toLowerCase("ABC");
print trim("  spaced  ");
`)
	require.NoError(t, err)
	assert.Equal(t, "true\ntrue\nhello\nABC\nabc\nspaced\n", out)
}

func TestSplitEmptyDelimiterReturnsWholeString(t *testing.T) {
	out, err := run(t, `
var parts = split("abc", "");
print listLen(parts);
print listGet(parts, 0);
`)
	require.NoError(t, err)
	assert.Equal(t, "1\nabc\n", out)
}

func TestListNatives(t *testing.T) {
	out, err := run(t, `
var xs = [1, 2];
listPush(xs, 3);
print listLen(xs);
print listGet(xs, 2);
listSet(xs, 0, 10);
print listGet(xs, 0);
print listPop(xs);
print listLen(xs);
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n3\n10\n3\n2\n", out)
}

func TestMapNatives(t *testing.T) {
	out, err := run(t, `
var m = map();
mapSet(m, "a", 1);
print mapGet(m, "a");
print dictExists(m, "a");
mapDelete(m, "a");
print dictExists(m, "a");
`)
	require.NoError(t, err)
	assert.Equal(t, "1\ntrue\nfalse\n", out)
}

func TestMathNatives(t *testing.T) {
	out, err := run(t, `
print abs(-5);
print fabs(-5);
print pow(2, 10);
print fmod(7, 3);
print floor(1.9);
print ceil(1.1);
`)
	require.NoError(t, err)
	assert.Equal(t, "5\n5\n1024\n1\n1\n2\n", out)
}

func TestRandomIntStaysInRange(t *testing.T) {
	out, err := run(t, `
var n = randomInt(5, 5);
print n;
`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestArityErrorsFault(t *testing.T) {
	_, err := run(t, `print len("a", "b");`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "len() takes exactly 1 argument")
}

func TestSubstringOutOfRangeFaults(t *testing.T) {
	_, err := run(t, `print substring("hi", 0, 5);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
