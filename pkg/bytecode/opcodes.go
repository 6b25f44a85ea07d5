package bytecode

// OpCode is a single bytecode instruction's opcode byte.
type OpCode uint8

const (
	OpConstant OpCode = iota
	OpNil
	OpTrue
	OpFalse
	OpPop
	OpGetLocal
	OpSetLocal
	OpGetGlobal
	OpSetGlobal
	OpDefineGlobal
	OpEqual
	OpGreater
	OpLess
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpNot
	OpNegate
	OpPrint
	OpJump
	OpJumpIfFalse
	OpLoop
	OpCall
	OpNewList
	OpListAppend
	OpGetSubscript
	OpSetSubscript
	OpImport
	OpExport
	OpReturn

	opCodeCount
)

var opCodeNames = [opCodeCount]string{
	OpConstant:     "OP_CONSTANT",
	OpNil:          "OP_NIL",
	OpTrue:         "OP_TRUE",
	OpFalse:        "OP_FALSE",
	OpPop:          "OP_POP",
	OpGetLocal:     "OP_GET_LOCAL",
	OpSetLocal:     "OP_SET_LOCAL",
	OpGetGlobal:    "OP_GET_GLOBAL",
	OpSetGlobal:    "OP_SET_GLOBAL",
	OpDefineGlobal: "OP_DEFINE_GLOBAL",
	OpEqual:        "OP_EQUAL",
	OpGreater:      "OP_GREATER",
	OpLess:         "OP_LESS",
	OpAdd:          "OP_ADD",
	OpSubtract:     "OP_SUBTRACT",
	OpMultiply:     "OP_MULTIPLY",
	OpDivide:       "OP_DIVIDE",
	OpModulo:       "OP_MODULO",
	OpNot:          "OP_NOT",
	OpNegate:       "OP_NEGATE",
	OpPrint:        "OP_PRINT",
	OpJump:         "OP_JUMP",
	OpJumpIfFalse:  "OP_JUMP_IF_FALSE",
	OpLoop:         "OP_LOOP",
	OpCall:         "OP_CALL",
	OpNewList:      "OP_NEW_LIST",
	OpListAppend:   "OP_LIST_APPEND",
	OpGetSubscript: "OP_GET_SUBSCRIPT",
	OpSetSubscript: "OP_SET_SUBSCRIPT",
	OpImport:       "OP_IMPORT",
	OpExport:       "OP_EXPORT",
	OpReturn:       "OP_RETURN",
}

func (op OpCode) String() string {
	if int(op) >= len(opCodeNames) {
		return "OP_UNKNOWN"
	}
	return opCodeNames[op]
}
