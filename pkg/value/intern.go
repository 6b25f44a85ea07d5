/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package value

import "github.com/flslang/fls/pkg/table"

// Interner is the shared string-intern pool. Both the compiler (for string
// literals and identifier names) and the VM (for strings built at runtime,
// e.g. by concatenation) go through the same Interner, which is what makes
// pointer equality a valid stand-in for content equality.
type Interner struct {
	strings *table.Table[*String, struct{}]
}

// NewInterner returns a new, empty Interner.
func NewInterner() *Interner {
	return &Interner{strings: table.New[*String, struct{}]()}
}

// Intern returns the canonical *String for chars, creating and pooling one
// if this is the first time these bytes have been seen.
func (in *Interner) Intern(chars string) *String {
	hash := HashBytes(chars)
	if existing, ok := in.strings.FindString(hash, func(k *String) bool {
		return k.Chars == chars
	}); ok {
		return existing
	}
	s := &String{Chars: chars, hash: hash}
	in.strings.Set(s, struct{}{})
	return s
}

// Count returns the number of distinct strings currently interned.
func (in *Interner) Count() int {
	return in.strings.Count()
}
