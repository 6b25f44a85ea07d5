package value

// ObjKind identifies which heap object variant an Object is.
type ObjKind uint8

const (
	ObjString ObjKind = iota
	ObjFunction
	ObjNative
	ObjList
	ObjMap
	ObjModule
	ObjClosure
)

var objKindNames = [...]string{
	ObjString:   "string",
	ObjFunction: "function",
	ObjNative:   "native function",
	ObjList:     "list",
	ObjMap:      "map",
	ObjModule:   "module",
	ObjClosure:  "function",
}

func (k ObjKind) String() string {
	if int(k) >= len(objKindNames) {
		return "object"
	}
	return objKindNames[k]
}

// Object is any FLS heap value: a string, function, native, list, map or
// module. Every Object is threaded onto the VM's object list at birth (via
// Next/SetNext) so the whole heap can be torn down in one pass at shutdown;
// there is no tracing collector and no per-object ownership.
type Object interface {
	Kind() ObjKind
	String() string

	// Next returns the next object in the VM-wide allocation list.
	Next() Object
	// SetNext links this object to the next one in the allocation list.
	SetNext(o Object)
}

// ObjBase is embedded by every concrete Object to provide the
// allocation-list link without repeating it in each variant. It is exported
// so that Object variants living outside this package (functions, natives,
// modules, which also need the bytecode package) can embed it too.
type ObjBase struct {
	next Object

	// token is the allocation-accounting handle assigned by the VM at
	// birth, standing in for a raw allocator address: the same token is
	// reused across the lifetime of one object so the profiler can tell a
	// regrowth of an existing allocation from a brand new one.
	token uint64
}

func (b *ObjBase) Next() Object     { return b.next }
func (b *ObjBase) SetNext(o Object) { b.next = o }

// Token returns this object's allocation-accounting handle.
func (b *ObjBase) Token() uint64 { return b.token }

// SetToken assigns this object's allocation-accounting handle. Called once,
// by the VM, right after allocation.
func (b *ObjBase) SetToken(t uint64) { b.token = t }
