package object

// Method is the shape every dispatcher-invoked method pointer must be
// callable as. The runtime never inspects arguments beyond passing them
// through — per spec.md §6, the caller is responsible for invoking a
// resolved method with the signature its key's convention promises.
// Concrete framework hooks (IsType, Initialize, Finalize, Copy, Write) wrap
// this in a type-asserting shim so user code at the call site still sees a
// typed signature; see lifecycle.go.
type Method func(top, match *Object, args ...any) any

// entry is exactly one of a method pointer or an owned data buffer, never
// both — spec.md §3's entry invariant. Like the C original it has two
// fields of which exactly one is non-nil; MethodRegister and DataRegister
// keep the other one nil, and isMethod/isData test it by nil check.
type entry struct {
	key    Key
	method Method // set iff this is a method entry
	data   []byte // set iff this is a data entry
}

func (e *entry) isMethod() bool { return e.method != nil }
func (e *entry) isData() bool   { return e.data != nil }

// entryTable maps a Key to its entry. It is created lazily on first
// registration (registry.go) and torn down during Finalize (lifecycle.go).
//
// Go's builtin map is the direct replacement for spec.md §6's "hash table
// primitive... keyed on the entry's method key": no repo in the example
// corpus reaches for a third-party hash-table/container library anywhere,
// including for pointer-identity keys, so there is no ecosystem precedent
// to follow instead. See DESIGN.md.
type entryTable map[Key]*entry

// lookup returns the entry for key, or nil if absent.
func (t entryTable) lookup(key Key) *entry {
	if t == nil {
		return nil
	}
	return t[key]
}

// insertUnique inserts e under key iff no entry exists yet for that key.
// Reports whether the insert happened.
func (t entryTable) insertUnique(key Key, e *entry) bool {
	if _, exists := t[key]; exists {
		return false
	}
	t[key] = e
	return true
}

// remove deletes and returns the entry for key, or nil if absent.
func (t entryTable) remove(key Key) *entry {
	e, ok := t[key]
	if !ok {
		return nil
	}
	delete(t, key)
	return e
}
