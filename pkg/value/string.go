package value

import "hash/fnv"

// String is an immutable byte string. Strings obtained from an Interner (see
// intern.go) are unique per content: two interned Strings with identical
// content are the exact same *String reference -- so object identity can
// stand in for content equality everywhere else in the VM. Strings built
// with NewString bypass that pool.
type String struct {
	ObjBase
	Chars string
	hash  uint32
}

// NewString builds a String with its hash computed, without adding it to any
// Interner's pool, so it is not identical to an interned String of the same
// content.
func NewString(chars string) *String {
	return &String{Chars: chars, hash: HashBytes(chars)}
}

// HashBytes computes the 32-bit FNV-1a hash used for string interning and
// table lookups.
func HashBytes(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func (s *String) Hash() uint32 { return s.hash }

func (s *String) Kind() ObjKind  { return ObjString }
func (s *String) String() string { return s.Chars }
func (s *String) Len() int       { return len(s.Chars) }
