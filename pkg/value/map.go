package value

import "github.com/flslang/fls/pkg/table"

// Map is a string-keyed hash table value, backed by the same open-addressed
// table implementation used for globals and module exports.
type Map struct {
	ObjBase
	Table *table.Table[*String, Value]
}

// NewMap returns a new, empty Map.
func NewMap() *Map {
	return &Map{Table: table.New[*String, Value]()}
}

func (m *Map) Kind() ObjKind { return ObjMap }

func (m *Map) String() string {
	s := "{"
	first := true
	m.Table.Each(func(k *String, v Value) {
		if !first {
			s += ", "
		}
		first = false
		s += k.Chars + ": " + v.String()
	})
	return s + "}"
}
