/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package vm implements the FLS bytecode interpreter: a stack-based virtual
// machine with call frames, matching the opcodes pkg/compiler emits.
package vm

import (
	"fmt"
	"io"

	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/profiler"
	"github.com/flslang/fls/pkg/table"
	"github.com/flslang/fls/pkg/value"
)

// maxFrames is the hard cap on simultaneous call frames (recursion depth),
// matching FRAMES_MAX in the reference implementation.
const maxFrames = 64

// AllocObj is any heap object the VM tracks for allocation accounting: every
// value.Object variant satisfies it automatically, since all of them embed
// value.ObjBase.
type AllocObj interface {
	value.Object
	Token() uint64
	SetToken(uint64)
}

// VM is one instance of the FLS interpreter: its own operand stack, globals,
// module cache, and heap-accounting state. A fresh VM is created for each
// top-level Interpret call; two runs never share state.
type VM struct {
	out io.Writer
	in  io.Reader

	interner *value.Interner
	globals  *table.Table[*value.String, value.Value]
	modules  *table.Table[*value.String, value.Value]

	stack  *Stack
	frames []*callFrame
	frame  *callFrame

	objects value.Object

	bytesAllocated uint64
	nextGC         uint64

	profiler *profiler.Profiler
}

// New returns a new VM writing program output to out and reading `input()`
// calls from in, sharing the given Interner with whatever compiled the code
// it will run.
func New(out io.Writer, in io.Reader, interner *value.Interner) *VM {
	return &VM{
		out:      out,
		in:       in,
		interner: interner,
		globals:  table.New[*value.String, value.Value](),
		modules:  table.New[*value.String, value.Value](),
		profiler: profiler.New(),
		nextGC:   1 << 20,
	}
}

// Out returns the writer program output is sent to.
func (vm *VM) Out() io.Writer { return vm.out }

// In returns the reader `input()` reads from.
func (vm *VM) In() io.Reader { return vm.in }

// Interner returns the string-intern pool this VM shares with its compiler.
func (vm *VM) Interner() *value.Interner { return vm.interner }

// Preflight reports whether this VM is currently running a preflight dry
// run, i.e. whether side-effecting natives should stub themselves out
// instead of touching the real world.
func (vm *VM) Preflight() bool { return vm.profiler.Enabled() }

// DefineGlobal registers name (interned) as a global bound to v -- used at
// startup to install native functions and constants, mirroring the
// reference VM's defineNative/defineGlobal convenience functions.
func (vm *VM) DefineGlobal(name string, v value.Value) {
	vm.globals.Set(vm.interner.Intern(name), v)
}

// TrackAlloc registers a freshly created heap object of size bytes for
// allocation accounting: it gets an accounting token, is linked onto the
// VM's object list, and counts toward bytesAllocated / the preflight
// profiler's memory plan table.
func (vm *VM) TrackAlloc(o AllocObj, size int) {
	token := vm.profiler.NextToken()
	o.SetToken(token)
	o.SetNext(vm.objects)
	vm.objects = o
	vm.bytesAllocated += uint64(size)
	vm.profiler.RecordAllocation(token, size)
}

// TrackGrowth records that an already-tracked object (see TrackAlloc) has
// grown to newSize bytes, e.g. a list gaining an element.
func (vm *VM) TrackGrowth(o AllocObj, newSize int) {
	vm.profiler.RecordGrowth(o.Token(), newSize)
}

// newList allocates and tracks a fresh, empty list.
func (vm *VM) newList() *value.List {
	return vm.NewList()
}

// NewList allocates and tracks a fresh, empty list -- exported so natives
// that build lists (e.g. `split`, `analyze`) can participate in the same
// allocation accounting as OP_NEW_LIST.
func (vm *VM) NewList() *value.List {
	l := value.NewList()
	vm.TrackAlloc(l, 0)
	return l
}

// NewMap allocates and tracks a fresh, empty map -- exported so natives can
// build one (e.g. the `map`/`newDict` natives).
func (vm *VM) NewMap() *value.Map {
	m := value.NewMap()
	vm.TrackAlloc(m, 0)
	return m
}

// runtimeError builds a *errs.Runtime carrying a frame-by-frame trace,
// innermost call first.
func (vm *VM) runtimeError(format string, a ...any) error {
	trace := make([]string, 0, len(vm.frames))
	for i := len(vm.frames) - 1; i >= 0; i-- {
		f := vm.frames[i]
		name := f.fn.Name
		if name == "" {
			name = "<script>"
		}
		trace = append(trace, fmt.Sprintf("[line %d] in %s()", f.line(), name))
	}
	return &errs.Runtime{Message: fmt.Sprintf(format, a...), Trace: trace}
}

// call pushes a new call frame for fn, addressing argCount already-pushed
// arguments (plus the callee itself, at the bottom of the new frame's
// window) as its parameters.
func (vm *VM) call(fn *object.Function, argCount int) error {
	if argCount != fn.Arity {
		return vm.runtimeError("Expected %d arguments but got %d.", fn.Arity, argCount)
	}
	if len(vm.frames) == maxFrames {
		return vm.runtimeError("Stack overflow.")
	}

	view := vm.stack.createView(argCount + 1)
	frame := &callFrame{fn: fn, stack: view}
	vm.frames = append(vm.frames, frame)
	vm.frame = frame
	vm.profiler.RecordStackDepth(len(vm.frames))
	return nil
}

// callValue invokes callee (a Function or Native value) with argCount
// already-pushed arguments. For a Function this pushes a new call frame and
// returns with execution about to resume in it; for a Native it runs to
// completion immediately, replacing the callee and its arguments on the
// stack with the single return value.
func (vm *VM) callValue(callee value.Value, argCount int) error {
	if !callee.IsObject() {
		return vm.runtimeError("Can only call functions.")
	}

	switch callee := callee.AsObject().(type) {
	case *object.Function:
		return vm.call(callee, argCount)

	case *object.Native:
		args := make([]value.Value, argCount)
		for i := 0; i < argCount; i++ {
			args[i] = vm.frame.stack.peek(argCount - 1 - i)
		}
		result, ok := callee.Fn(argCount, args)
		if !ok {
			msg := "native call failed"
			if result.IsString() {
				msg = result.AsString().Chars
			}
			return vm.runtimeError("%s", msg)
		}
		for i := 0; i < argCount+1; i++ {
			vm.frame.stack.pop()
		}
		vm.frame.stack.push(result)
		return nil

	default:
		return vm.runtimeError("Can only call functions.")
	}
}

// interpretFunction runs fn as a fresh program: a new stack, a single
// initial call frame, run to completion.
func (vm *VM) interpretFunction(fn *object.Function) error {
	vm.stack = &Stack{}
	vm.stack.push(value.FromObject(fn))
	view := vm.stack.createView(1)
	frame := &callFrame{fn: fn, stack: view}
	vm.frames = []*callFrame{frame}
	vm.frame = frame
	return vm.run()
}
