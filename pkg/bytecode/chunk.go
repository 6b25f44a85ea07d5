package bytecode

import "github.com/flslang/fls/pkg/value"

// maxConstants is the maximum number of constants a single Chunk's constant
// pool can hold -- the pool index is a one-byte operand.
const maxConstants = 256

// A Chunk is the bytecode for a single function: its instruction stream, a
// parallel line-number table (one entry per byte of Code, for error
// reporting), and its constant pool.
type Chunk struct {
	// Code holds both opcodes and the immediate operand bytes that follow
	// them.
	Code []byte

	// Lines[i] is the source line that produced Code[i].
	Lines []int

	// Constants is this chunk's constant pool: numbers and strings referenced
	// by OP_CONSTANT.
	Constants []value.Value
}

// WriteByte appends a single byte of bytecode, tagging it with the source
// line it came from.
func (c *Chunk) WriteByte(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOp appends an opcode.
func (c *Chunk) WriteOp(op OpCode, line int) {
	c.WriteByte(byte(op), line)
}

// AddConstant adds value to the constant pool and returns its index. Returns
// -1 if the pool is already full (256 entries -- the compiler turns that
// into a "too many constants" error).
func (c *Chunk) AddConstant(v value.Value) int {
	if len(c.Constants) >= maxConstants {
		return -1
	}
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// Len returns the number of bytes of bytecode emitted so far.
func (c *Chunk) Len() int {
	return len(c.Code)
}
