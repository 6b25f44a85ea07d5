/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package natives

import (
	"github.com/flslang/fls/pkg/object"
	"github.com/flslang/fls/pkg/value"
	"github.com/flslang/fls/pkg/vm"
)

func registerCollections(v *vm.VM) {
	registerLists(v)
	registerMaps(v)
}

func registerLists(v *vm.VM) {
	def(v, "listLen", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("listLen() takes exactly 1 argument (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listLen() argument must be a list.")
		}
		return value.Number(float64(len(list.Items))), true
	})

	def(v, "listGet", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("listGet() takes exactly 2 arguments (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listGet() first argument must be a list.")
		}
		if !args[1].IsNumber() {
			return fault("listGet() second argument must be a number (index).")
		}
		elem, ok := list.Get(int(args[1].AsNumber()))
		if !ok {
			return fault("listGet() index out of bounds.")
		}
		return elem, true
	})

	def(v, "listSet", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 3 {
			return fault("listSet() takes exactly 3 arguments (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listSet() first argument must be a list.")
		}
		if !args[1].IsNumber() {
			return fault("listSet() second argument must be a number (index).")
		}
		if !list.Set(int(args[1].AsNumber()), args[2]) {
			return fault("listSet() index out of bounds.")
		}
		return args[2], true
	})

	def(v, "listPush", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("listPush() takes exactly 2 arguments (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listPush() first argument must be a list.")
		}
		list.Append(args[1])
		v.TrackGrowth(list, len(list.Items))
		return args[1], true
	})

	def(v, "listPop", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("listPop() takes exactly 1 argument (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listPop() first argument must be a list.")
		}
		if len(list.Items) == 0 {
			return fault("listPop() called on an empty list.")
		}
		last := list.Items[len(list.Items)-1]
		list.Items = list.Items[:len(list.Items)-1]
		return last, true
	})

	def(v, "listShift", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("listShift() takes exactly 1 argument (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listShift() first argument must be a list.")
		}
		if len(list.Items) == 0 {
			return fault("listShift() called on an empty list.")
		}
		first := list.Items[0]
		list.Items = list.Items[1:]
		return first, true
	})

	def(v, "listClear", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 1 {
			return fault("listClear() takes exactly 1 argument (%d given).", argc)
		}
		list, ok := asList(args[0])
		if !ok {
			return fault("listClear() argument must be a list.")
		}
		list.Items = nil
		return value.Nil, true
	})
}

func asList(v value.Value) (*value.List, bool) {
	if !v.IsObject() {
		return nil, false
	}
	l, ok := v.AsObject().(*value.List)
	return l, ok
}

func asMap(v value.Value) (*value.Map, bool) {
	if !v.IsObject() {
		return nil, false
	}
	m, ok := v.AsObject().(*value.Map)
	return m, ok
}

// registerMaps installs both the `map`/`mapGet`/`mapSet`/`mapDelete` names
// and the `newDict`/`dictGet`/`dictSet`/`dictDelete`/`dictExists` names --
// in the reference interpreter these are two independently named libraries
// (src/vm.c's mapNative family and std/src/dict.c's dictNative family) that
// both just wrap ObjMap's table, so here they share one implementation.
func registerMaps(v *vm.VM) {
	newMap := func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 0 {
			return fault("map() takes no arguments (%d given).", argc)
		}
		return value.FromObject(v.NewMap()), true
	}
	def(v, "map", newMap)
	def(v, "newDict", newMap)

	setEntry := func(name string) object.NativeFn {
		return func(argc int, args []value.Value) (value.Value, bool) {
			if argc != 3 {
				return fault("%s() takes 3 arguments: map, key, value (%d given).", name, argc)
			}
			m, ok := asMap(args[0])
			if !ok {
				return fault("First argument to %s() must be a map.", name)
			}
			if !args[1].IsString() {
				return fault("Second argument (key) to %s() must be a string.", name)
			}
			m.Table.Set(args[1].AsString(), args[2])
			v.TrackGrowth(m, m.Table.Count())
			return args[2], true
		}
	}
	def(v, "mapSet", setEntry("mapSet"))
	def(v, "dictSet", setEntry("dictSet"))

	getEntry := func(name string) object.NativeFn {
		return func(argc int, args []value.Value) (value.Value, bool) {
			if argc != 2 {
				return fault("%s() takes 2 arguments: map, key (%d given).", name, argc)
			}
			m, ok := asMap(args[0])
			if !ok {
				return fault("First argument to %s() must be a map.", name)
			}
			if !args[1].IsString() {
				return fault("Second argument (key) to %s() must be a string.", name)
			}
			val, ok := m.Table.Get(args[1].AsString())
			if !ok {
				return value.Nil, true
			}
			return val, true
		}
	}
	def(v, "mapGet", getEntry("mapGet"))
	def(v, "dictGet", getEntry("dictGet"))

	deleteEntry := func(name string) object.NativeFn {
		return func(argc int, args []value.Value) (value.Value, bool) {
			if argc != 2 {
				return fault("%s() takes 2 arguments: map, key (%d given).", name, argc)
			}
			m, ok := asMap(args[0])
			if !ok {
				return fault("First argument to %s() must be a map.", name)
			}
			if !args[1].IsString() {
				return fault("Second argument (key) to %s() must be a string.", name)
			}
			return value.Bool(m.Table.Delete(args[1].AsString())), true
		}
	}
	def(v, "mapDelete", deleteEntry("mapDelete"))
	def(v, "dictDelete", deleteEntry("dictDelete"))

	def(v, "dictExists", func(argc int, args []value.Value) (value.Value, bool) {
		if argc != 2 {
			return fault("dictExists() takes 2 arguments: map, key (%d given).", argc)
		}
		m, ok := asMap(args[0])
		if !ok {
			return fault("First argument to dictExists() must be a map.")
		}
		if !args[1].IsString() {
			return fault("Second argument (key) to dictExists() must be a string.")
		}
		_, found := m.Table.Get(args[1].AsString())
		return value.Bool(found), true
	})
}
