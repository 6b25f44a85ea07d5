/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/flslang/fls/pkg/bytecode"
	"github.com/flslang/fls/pkg/compiler"
	"github.com/flslang/fls/pkg/errs"
	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/profiler"
	"github.com/flslang/fls/pkg/value"
)

// Interpret compiles source (named fileName, for diagnostics) and runs it to
// completion, writing program output to out and reading `input()` calls
// from in. register installs the native function library into each VM it's
// given (pkg/natives.Register, normally) -- threaded in as a callback so
// this package never needs to import the natives package, which itself
// needs to import this one for the *VM type. When preflight is true, the
// program is first dry-run once with output suppressed and side-effecting
// natives stubbed out, looking for signs of non-termination; only if that
// pass finishes cleanly does the real run happen, seeded with the
// memory-growth floor preflight observed.
func Interpret(fileName, source string, out io.Writer, in io.Reader, preflight bool, register func(*VM)) error {
	interner := value.NewInterner()
	mod := object.NewModule("<main>")
	fn, err := compiler.Compile(fileName, source, mod, interner)
	if err != nil {
		return err
	}
	mod.Toplevel = fn
	mod.Compiled = true

	var nextGCFloor uint64

	if preflight {
		pre := New(io.Discard, nil, interner)
		register(pre)
		pre.profiler.Reset()
		if perr := pre.interpretFunction(fn); perr != nil {
			return perr
		}
		pre.profiler.Disable()
		nextGCFloor = pre.profiler.NextGCFloor()
	}

	real := New(out, in, interner)
	register(real)
	if nextGCFloor > real.nextGC {
		real.nextGC = nextGCFloor
	}
	return real.interpretFunction(fn)
}

// run is the VM's main fetch-decode-execute loop. It runs until the initial
// call frame returns (the whole program is done) or a runtime fault -- from
// the program itself or from the preflight profiler -- aborts it.
func (vm *VM) run() error {
	for {
		if vm.profiler.Enabled() {
			if reason := vm.profiler.CheckInstruction(len(vm.frames)); reason != profiler.AbortNone {
				return errs.NewPreflightAbort(string(reason), "execution aborted during preflight")
			}
		}

		instr := bytecode.OpCode(vm.frame.readByte())

		switch instr {
		case bytecode.OpConstant:
			idx := vm.frame.readByte()
			vm.frame.stack.push(vm.frame.fn.Chunk.Constants[idx])

		case bytecode.OpNil:
			vm.frame.stack.push(value.Nil)

		case bytecode.OpTrue:
			vm.frame.stack.push(value.Bool(true))

		case bytecode.OpFalse:
			vm.frame.stack.push(value.Bool(false))

		case bytecode.OpPop:
			vm.frame.stack.pop()

		case bytecode.OpGetLocal:
			slot := int(vm.frame.readByte())
			vm.frame.stack.push(vm.frame.stack.at(slot))

		case bytecode.OpSetLocal:
			slot := int(vm.frame.readByte())
			vm.frame.stack.setAt(slot, vm.frame.stack.peek(0))

		case bytecode.OpGetGlobal:
			name := vm.readStringConstant()
			v, ok := vm.globals.Get(name)
			if !ok {
				return vm.runtimeError("Undefined variable '%s'.", name.Chars)
			}
			vm.frame.stack.push(v)

		case bytecode.OpSetGlobal:
			name := vm.readStringConstant()
			if vm.globals.Set(name, vm.frame.stack.peek(0)) {
				vm.globals.Delete(name)
				return vm.runtimeError("Undefined variable '%s'.", name.Chars)
			}

		case bytecode.OpDefineGlobal:
			name := vm.readStringConstant()
			vm.globals.Set(name, vm.frame.stack.peek(0))
			vm.frame.stack.pop()

		case bytecode.OpEqual:
			b := vm.frame.stack.pop()
			a := vm.frame.stack.pop()
			vm.frame.stack.push(value.Bool(value.Equal(a, b)))

		case bytecode.OpGreater:
			if err := vm.binaryOp(instr); err != nil {
				return err
			}

		case bytecode.OpLess:
			if err := vm.binaryOp(instr); err != nil {
				return err
			}

		case bytecode.OpAdd:
			if err := vm.add(); err != nil {
				return err
			}

		case bytecode.OpSubtract, bytecode.OpMultiply, bytecode.OpDivide, bytecode.OpModulo:
			if err := vm.binaryOp(instr); err != nil {
				return err
			}

		case bytecode.OpNot:
			v := vm.frame.stack.pop()
			vm.frame.stack.push(value.Bool(!v.IsTruthy()))

		case bytecode.OpNegate:
			v := vm.frame.stack.pop()
			if !v.IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			vm.frame.stack.push(value.Number(-v.AsNumber()))

		case bytecode.OpPrint:
			v := vm.frame.stack.pop()
			if vm.profiler.Enabled() {
				vm.profiler.RecordOutput()
			} else {
				fmt.Fprintln(vm.out, v.String())
			}

		case bytecode.OpJump:
			offset := vm.frame.readShort()
			vm.frame.ip += offset

		case bytecode.OpJumpIfFalse:
			offset := vm.frame.readShort()
			if !vm.frame.stack.peek(0).IsTruthy() {
				vm.frame.ip += offset
			}

		case bytecode.OpLoop:
			loopID := fmt.Sprintf("%p:%d", vm.frame.fn, vm.frame.ip-1)
			offset := vm.frame.readShort()
			vm.frame.ip -= offset
			if vm.profiler.Enabled() {
				if !vm.profiler.CheckLoopProgress(loopID, len(vm.frames)) {
					return errs.NewPreflightAbort(string(profiler.AbortInfiniteLoop), "loop shows no progress after many iterations")
				}
			}

		case bytecode.OpCall:
			argCount := int(vm.frame.readByte())
			if err := vm.callValue(vm.frame.stack.peek(argCount), argCount); err != nil {
				return err
			}

		case bytecode.OpNewList:
			vm.frame.stack.push(value.FromObject(vm.newList()))

		case bytecode.OpListAppend:
			v := vm.frame.stack.pop()
			listVal := vm.frame.stack.peek(0)
			list, ok := listVal.AsObject().(*value.List)
			if !ok {
				return errs.NewICE("OP_LIST_APPEND on a non-list value")
			}
			list.Append(v)
			vm.TrackGrowth(list, len(list.Items)*16)

		case bytecode.OpGetSubscript:
			if err := vm.getSubscript(); err != nil {
				return err
			}

		case bytecode.OpSetSubscript:
			if err := vm.setSubscript(); err != nil {
				return err
			}

		case bytecode.OpImport:
			if err := vm.doImport(); err != nil {
				return err
			}

		case bytecode.OpExport:
			nameIdx := vm.frame.readByte()
			name := vm.frame.fn.Chunk.Constants[nameIdx].AsString()
			v, ok := vm.globals.Get(name)
			if !ok {
				return errs.NewICE("export of undefined global '%s'", name.Chars)
			}
			vm.frame.fn.Module.Exports.Set(name, v)

		case bytecode.OpReturn:
			if done, err := vm.doReturn(); err != nil {
				return err
			} else if done {
				return nil
			}

		default:
			return errs.NewICE("unknown opcode %v", instr)
		}
	}
}

func (vm *VM) readStringConstant() *value.String {
	idx := vm.frame.readByte()
	return vm.frame.fn.Chunk.Constants[idx].AsString()
}

func (vm *VM) binaryOp(op bytecode.OpCode) error {
	bv := vm.frame.stack.pop()
	av := vm.frame.stack.pop()
	if !av.IsNumber() || !bv.IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	a, b := av.AsNumber(), bv.AsNumber()

	var result value.Value
	switch op {
	case bytecode.OpSubtract:
		result = value.Number(a - b)
	case bytecode.OpMultiply:
		result = value.Number(a * b)
	case bytecode.OpDivide:
		if b == 0 {
			return vm.runtimeError("Division by zero.")
		}
		result = value.Number(a / b)
	case bytecode.OpModulo:
		if b == 0 {
			return vm.runtimeError("Modulo by zero.")
		}
		result = value.Number(math.Mod(a, b))
	case bytecode.OpGreater:
		result = value.Bool(a > b)
	case bytecode.OpLess:
		result = value.Bool(a < b)
	default:
		return errs.NewICE("binaryOp called with non-binary opcode %v", op)
	}
	vm.frame.stack.push(result)
	return nil
}

func (vm *VM) add() error {
	bv := vm.frame.stack.pop()
	av := vm.frame.stack.pop()

	switch {
	case av.IsNumber() && bv.IsNumber():
		vm.frame.stack.push(value.Number(av.AsNumber() + bv.AsNumber()))
	case av.IsString() && bv.IsString():
		concat := av.AsString().Chars + bv.AsString().Chars
		vm.frame.stack.push(value.FromObject(vm.interner.Intern(concat)))
	default:
		return vm.runtimeError("Operands must be two numbers or two strings.")
	}
	return nil
}

func (vm *VM) getSubscript() error {
	idxVal := vm.frame.stack.pop()
	recvVal := vm.frame.stack.pop()

	if !recvVal.IsObject() {
		return vm.runtimeError("Can only subscript lists and maps.")
	}

	switch recv := recvVal.AsObject().(type) {
	case *value.List:
		if !idxVal.IsNumber() {
			return vm.runtimeError("List index must be a number.")
		}
		v, ok := recv.Get(int(idxVal.AsNumber()))
		if !ok {
			return vm.runtimeError("List index out of bounds.")
		}
		vm.frame.stack.push(v)

	case *value.Map:
		if !idxVal.IsString() {
			return vm.runtimeError("Map keys must be strings.")
		}
		v, ok := recv.Table.Get(idxVal.AsString())
		if !ok {
			vm.frame.stack.push(value.Nil)
		} else {
			vm.frame.stack.push(v)
		}

	default:
		return vm.runtimeError("Can only subscript lists and maps.")
	}
	return nil
}

func (vm *VM) setSubscript() error {
	val := vm.frame.stack.pop()
	idxVal := vm.frame.stack.pop()
	recvVal := vm.frame.stack.pop()

	if !recvVal.IsObject() {
		return vm.runtimeError("Can only subscript lists and maps.")
	}

	switch recv := recvVal.AsObject().(type) {
	case *value.List:
		if !idxVal.IsNumber() {
			return vm.runtimeError("List index must be a number.")
		}
		if !recv.Set(int(idxVal.AsNumber()), val) {
			return vm.runtimeError("List index out of bounds.")
		}

	case *value.Map:
		if !idxVal.IsString() {
			return vm.runtimeError("Map keys must be strings.")
		}
		recv.Table.Set(idxVal.AsString(), val)
		vm.TrackGrowth(recv, recv.Table.Count()*48)

	default:
		return vm.runtimeError("Can only subscript lists and maps.")
	}

	vm.frame.stack.push(val)
	return nil
}

// doImport implements OP_IMPORT: pop the module path string, serve it from
// cache if already compiled, otherwise compile and start running it -- as
// an ordinary call frame marked fromImport, so the main loop's OP_RETURN
// handling is what eventually merges its exports and pushes the module
// value (see doReturn).
func (vm *VM) doImport() error {
	pathVal := vm.frame.stack.pop()
	path := pathVal.AsString()

	if cached, ok := vm.modules.Get(path); ok {
		vm.frame.stack.push(cached)
		return nil
	}

	source, rerr := os.ReadFile(path.Chars)
	if rerr != nil {
		return vm.runtimeError("Could not open module '%s'.", path.Chars)
	}

	mod := object.NewModule(path.Chars)
	vm.modules.Set(path, value.FromObject(mod))

	fn, cerr := compiler.Compile(path.Chars, string(source), mod, vm.interner)
	if cerr != nil {
		vm.modules.Delete(path)
		return vm.runtimeError("Compile error in module '%s': %v", path.Chars, cerr)
	}
	mod.Toplevel = fn
	mod.Compiled = true

	vm.frame.stack.push(value.FromObject(fn))
	if err := vm.call(fn, 0); err != nil {
		vm.modules.Delete(path)
		return err
	}
	vm.frame.fromImport = true
	return nil
}

// doReturn implements OP_RETURN. It reports done=true once the outermost
// call frame (the whole program) has returned.
func (vm *VM) doReturn() (done bool, err error) {
	result := vm.frame.stack.pop()
	returning := vm.frame

	vm.frames = vm.frames[:len(vm.frames)-1]
	if len(vm.frames) == 0 {
		return true, nil
	}
	vm.frame = vm.frames[len(vm.frames)-1]

	if returning.fromImport {
		mod := returning.fn.Module
		mod.Exports.Each(func(k *value.String, v value.Value) {
			vm.globals.Set(k, v)
		})
		returning.stack.truncate()
		vm.frame.stack.push(value.FromObject(mod))
	} else {
		returning.stack.truncate()
		vm.frame.stack.push(result)
	}
	return false, nil
}
