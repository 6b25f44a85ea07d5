/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flslang/fls/pkg/compiler"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/value"
)

func compile(t *testing.T, source string) (*object.Function, error) {
	t.Helper()
	interner := value.NewInterner()
	mod := object.NewModule("<main>")
	return compiler.Compile("<test>", source, mod, interner)
}

func TestCompileValidProgram(t *testing.T) {
	fn, err := compile(t, `var x = 1; print x + 1;`)
	require.NoError(t, err)
	assert.NotNil(t, fn)
	assert.True(t, fn.Chunk.Len() > 0)
}

func TestCompileErrorsAreCollected(t *testing.T) {
	_, err := compile(t, `var x = ; var y = ;`)
	require.Error(t, err)

	var coll *errs.CompileTimeCollection
	require.ErrorAs(t, err, &coll)
	assert.GreaterOrEqual(t, len(coll.Errors), 2, "panic-mode recovery should gather both errors in one pass")
}

func TestTooManyParameters(t *testing.T) {
	var b strings.Builder
	b.WriteString("fun f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "p%d", i)
	}
	b.WriteString(") {}")

	_, err := compile(t, b.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "255 parameters")
}

func TestInvalidAssignmentTarget(t *testing.T) {
	_, err := compile(t, `1 + 2 = 3;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target")
}

func TestReturnOutsideFunction(t *testing.T) {
	_, err := compile(t, `return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return from top-level code")
}
