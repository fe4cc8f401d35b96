package object

// MethodRegister registers fn under key on o. If no entry exists yet for
// key, a fresh method entry is created and true is returned ("was new"). If
// an entry already exists it must be a method entry — registering a method
// over an existing data entry is a programmer error — and its pointer is
// overwritten, silently discarding the old one (spec.md §9 Open Question 1),
// returning false.
func MethodRegister(o *Object, key Key, fn Method) bool {
	if o.table == nil {
		o.table = make(entryTable)
	}

	if e := o.table.lookup(key); e != nil {
		assertf(e.isMethod(), "MethodRegister", "entry for key already exists and is not a method entry")
		e.method = fn
		return false
	}

	o.table.insertUnique(key, &entry{key: key, method: fn})
	return true
}

// MethodUnregister removes the method entry for key on o. Panics if no such
// method entry exists.
func MethodUnregister(o *Object, key Key) {
	e := o.table.remove(key)
	assertf(e != nil, "MethodUnregister", "no entry for key")
	assertf(e.isMethod(), "MethodUnregister", "entry for key is not a method entry")
}

// MethodLookup returns o's own method entry for key (not walking delegates),
// or nil if absent.
func MethodLookup(o *Object, key Key) Method {
	e := o.table.lookup(key)
	if e == nil {
		return nil
	}
	assertf(e.isMethod(), "MethodLookup", "entry for key is not a method entry")
	return e.method
}

// MethodSearch walks o's delegates (and, unless skipTop, o's own entry) for
// the first method entry matching key, per spec.md §4.5. It returns the method
// pointer (or nil if none matched) and, via m, the object that supplied it.
func MethodSearch(o *Object, key Key, skipTop bool, m **Object) Method {
	var found Method
	ctx := NewSearchContext(key, true, false)
	ctx.SkipTop = skipTop
	ctx.CallFn = func(_ *Object, match Match, _ any) bool {
		found = match.Method()
		return true
	}

	if ctx.Search(o) {
		assertf(ctx.LastMatch != nil, "MethodSearch", "search answered but LastMatch is nil")
		if m != nil {
			*m = ctx.LastMatch
		}
	}
	return found
}

// DataRegister allocates a zero-initialized data buffer of size bytes,
// registers it as a data entry under key on o, and returns the buffer. The
// buffer is owned by the entry and released when o is finalized. Panics if
// an entry for key already exists.
func DataRegister(o *Object, key Key, size int) []byte {
	if o.table == nil {
		o.table = make(entryTable)
	}

	e := &entry{key: key, data: make([]byte, size)}
	added := o.table.insertUnique(key, e)
	assertf(added, "DataRegister", "entry for key already exists")
	return e.data
}

// DataLookup returns o's own data entry for key (not walking delegates).
// Panics if no data entry exists for key.
func DataLookup(o *Object, key Key) []byte {
	e := o.table.lookup(key)
	assertf(e != nil, "DataLookup", "no entry for key")
	assertf(e.isData(), "DataLookup", "entry for key is not a data entry")
	return e.data
}

// DataSearch walks o's delegates (and, unless skipTop, o's own entry) for the
// first data entry matching key and returns its buffer, via m the object that
// supplied it. Asserts that at least one match exists; callers that cannot
// guarantee a match must use EntrySearch directly (spec.md §9).
func DataSearch(o *Object, key Key, skipTop bool, m **Object) []byte {
	var found []byte
	ctx := NewSearchContext(key, false, true)
	ctx.SkipTop = skipTop
	ctx.CallFn = func(_ *Object, match Match, _ any) bool {
		found = match.Data()
		return true
	}

	ok := ctx.Search(o)
	assertf(ok, "DataSearch", "no data entry found for key")
	assertf(ctx.LastMatch != nil, "DataSearch", "search answered but LastMatch is nil")
	if m != nil {
		*m = ctx.LastMatch
	}
	return found
}
