/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import "github.com/flslang/fls/pkg/object"

// callFrame is one active function call: the function being run, the
// instruction pointer into its chunk, and the stack window holding its
// receiver slot, parameters and locals.
type callFrame struct {
	fn    *object.Function
	ip    int
	stack *StackView

	// fromImport marks a frame pushed directly by OP_IMPORT to run a
	// module's top-level code, rather than by an ordinary OP_CALL. Its
	// OP_RETURN merges the module's exports into the VM's globals and
	// pushes the module object, instead of pushing the returned value.
	fromImport bool
}

func (f *callFrame) readByte() byte {
	b := f.fn.Chunk.Code[f.ip]
	f.ip++
	return b
}

func (f *callFrame) readShort() int {
	hi := f.fn.Chunk.Code[f.ip]
	lo := f.fn.Chunk.Code[f.ip+1]
	f.ip += 2
	return int(hi)<<8 | int(lo)
}

func (f *callFrame) line() int {
	return f.fn.Chunk.Lines[f.ip-1]
}
