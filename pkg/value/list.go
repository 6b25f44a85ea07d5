package value

// List is a growable, heterogeneous sequence of Values, backed by a Go
// slice. Indexing supports negative indices (counting from the end), as
// required by the GET_SUBSCRIPT/SET_SUBSCRIPT opcodes.
type List struct {
	ObjBase
	Items []Value
}

// NewList returns a new, empty List.
func NewList() *List {
	return &List{}
}

func (l *List) Kind() ObjKind { return ObjList }

func (l *List) String() string {
	s := "["
	for i, v := range l.Items {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + "]"
}

// Append adds v to the end of the list.
func (l *List) Append(v Value) {
	l.Items = append(l.Items, v)
}

// resolveIndex turns a possibly-negative FLS index into a Go slice index,
// reporting whether it lands in bounds.
func (l *List) resolveIndex(index int) (int, bool) {
	if index < 0 {
		index += len(l.Items)
	}
	if index < 0 || index >= len(l.Items) {
		return 0, false
	}
	return index, true
}

// Get returns the element at index (negative counts from the end) and
// whether the index was in bounds.
func (l *List) Get(index int) (Value, bool) {
	i, ok := l.resolveIndex(index)
	if !ok {
		return Nil, false
	}
	return l.Items[i], true
}

// Set stores value at index (negative counts from the end), reporting
// whether the index was in bounds.
func (l *List) Set(index int, value Value) bool {
	i, ok := l.resolveIndex(index)
	if !ok {
		return false
	}
	l.Items[i] = value
	return true
}
