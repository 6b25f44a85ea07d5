// Package value implements the FLS runtime value model: a tagged union of
// nil, boolean, number and object-reference values, plus the string, list
// and map heap objects that object references point to. The function,
// native and module objects are defined in pkg/object.
package value

import "fmt"

// Kind identifies which alternative of the Value union is populated.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindObject
)

// Value is an FLS value: nil, a boolean, a 64-bit float, or a reference to a
// heap Object. Equality is structural for the first three and reference
// identity for objects (which, thanks to interning, implies content
// equality for strings).
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	obj     Object
}

// Nil is the FLS nil value.
var Nil = Value{kind: KindNil}

// Bool wraps a boolean as a Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number wraps a float64 as a Value.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// FromObject wraps a heap Object as a Value.
func FromObject(o Object) Value { return Value{kind: KindObject, obj: o} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNil() bool  { return v.kind == KindNil }
func (v Value) IsBool() bool { return v.kind == KindBool }
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the value's boolean payload. Only meaningful if IsBool.
func (v Value) AsBool() bool { return v.boolean }

// AsNumber returns the value's numeric payload. Only meaningful if IsNumber.
func (v Value) AsNumber() float64 { return v.number }

// AsObject returns the value's object payload. Only meaningful if IsObject.
func (v Value) AsObject() Object { return v.obj }

// IsString reports whether v holds a *String object.
func (v Value) IsString() bool {
	_, ok := v.obj.(*String)
	return v.kind == KindObject && ok
}

// AsString returns the value's *String payload. Panics if v is not a string.
func (v Value) AsString() *String { return v.obj.(*String) }

// IsTruthy implements FLS truthiness: nil, false, and 0 are false; anything
// else (including empty strings, empty lists and "0.0"-looking non-zero
// numbers) is true.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number != 0
	default:
		return true
	}
}

// Equal implements FLS equality: structural for nil/bool/number, identity
// for objects (interning makes this equivalent to content equality for
// strings).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return a.number == b.number
	case KindObject:
		return a.obj == b.obj
	default:
		return false
	}
}

// String renders v the way `print` does.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindNumber:
		return FormatNumber(v.number)
	case KindObject:
		return v.obj.String()
	default:
		return fmt.Sprintf("<bad value kind %d>", v.kind)
	}
}

// TypeName returns a short, user-facing name for v's type, used in runtime
// error messages ("Operand must be a number, got string.").
func (v Value) TypeName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindObject:
		return v.obj.Kind().String()
	default:
		return "unknown"
	}
}
