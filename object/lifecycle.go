package object

import (
	"fmt"
	"io"
)

// IsType reports whether o answers true to typestr, by searching for the
// is_type key and invoking each matched predicate with signature
// (top, match, typestr) -> bool until one answers true (spec.md §4.6). top
// is threaded through as the originally invoked object so a predicate may
// inspect it rather than only the object whose entry matched.
func IsType(o *Object, typestr string) bool {
	ctx := NewSearchContext(keyIsType, true, false)
	ctx.CallFn = func(visited *Object, m Match, _ any) bool {
		fn := m.Method()
		ok, _ := fn(o, visited, typestr).(bool)
		return ok
	}
	return ctx.Search(o)
}

// Initialize searches o for every initialize match and invokes each in
// reverse visitation order — base-class initializers before derived, the
// conventional OO construction order (spec.md §4.6). skip_top is always
// false: o's own initialize entry (if any — klasses register none
// themselves beyond what KlassNew provides) participates like any delegate's.
func Initialize(o *Object, args *Args) {
	assertf(IsType(o, BaseTypeName), "Initialize", "object does not satisfy %q", BaseTypeName)

	var found []Match
	ctx := NewSearchContext(keyInitialize, true, false)
	ctx.Found = &found
	ctx.Search(o)

	for i := len(found); i > 0; i-- {
		m := found[i-1]
		fn := m.Method()
		assertf(fn != nil, "Initialize", "matched entry has nil method")
		fn(o, m.Object, args)
	}
}

// Finalize searches o for every finalize match and invokes each in forward
// visitation order — derived before base (spec.md §4.6) — then unwinds the
// delegate stack and destroys the entry table. The base klass's default
// finalizer performs exactly this tail work; user overrides must let the
// base match run last rather than doing their own teardown.
//
// Finalize is called automatically by Unref when the refcount reaches zero.
// Calling it directly on a still-referenced object, or more than once on the
// same object, violates spec.md invariant 4 ("after finalize, the object's
// storage is no longer accessed") and is the caller's responsibility to
// avoid.
func Finalize(o *Object) {
	assertf(IsType(o, BaseTypeName), "Finalize", "object does not satisfy %q", BaseTypeName)

	var found []Match
	ctx := NewSearchContext(keyFinalize, true, false)
	ctx.Found = &found
	ctx.Search(o)

	for _, m := range found {
		fn := m.Method()
		assertf(fn != nil, "Finalize", "matched entry has nil method")
		fn(o, m.Object)
	}
}

// Copy allocates a fresh object sharing o's delegate list (so the copy
// shares o's class hierarchy), then searches o for every copy match and
// invokes each in reverse visitation order — base state copied before
// derived, so derived copy methods may overwrite — with signature
// (src, match, dst) (spec.md §4.6).
func Copy(o *Object) *Object {
	assertf(IsType(o, BaseTypeName), "Copy", "object does not satisfy %q", BaseTypeName)

	dst := Alloc()
	for _, d := range o.delegates {
		dst.delegates.push(d)
	}

	var found []Match
	ctx := NewSearchContext(keyCopy, true, false)
	ctx.Found = &found
	if ctx.Search(o) {
		for i := len(found); i > 0; i-- {
			m := found[i-1]
			fn := m.Method()
			assertf(fn != nil, "Copy", "matched entry has nil method")
			fn(o, m.Object, dst)
		}
	}

	return dst
}

// Write resolves o's write method via MethodSearch and invokes it with the
// given sink, if found. Objects with no write method (impossible for
// anything delegating to a klass built by KlassNew, which always registers
// a default) produce no output.
func Write(o *Object, w io.Writer) {
	var m *Object
	fn := MethodSearch(o, keyWrite, false, &m)
	if fn != nil {
		fn(o, m, w)
	}
}

// defaultIsType is the base klass's is_type predicate: true iff typestr
// names the base object type, per spec.md §4.6.
func defaultIsType(_, _ *Object, args ...any) any {
	typestr, _ := args[0].(string)
	return typestr == BaseTypeName
}

// defaultFinalize is the base klass's finalizer: unwinds the delegate stack
// and destroys the entry table. It must always run last among a finalize
// chain (spec.md §4.6).
func defaultFinalize(o, _ *Object, _ ...any) any {
	o.delegates.popAll()
	o.table = nil
	return nil
}

// defaultWrite is the base klass's write method: a one-line descriptor
// naming the refcount and data pointer, matching the source library's
// "sc_object_t refs %d data %p" line.
func defaultWrite(o, _ *Object, args ...any) any {
	w, _ := args[0].(io.Writer)
	if w == nil {
		return nil
	}
	if o.Data == nil {
		fmt.Fprintf(w, "object.Object refs %d data %p\n", o.refs, (*int)(nil))
	} else {
		fmt.Fprintf(w, "object.Object refs %d data %p\n", o.refs, o.Data)
	}
	return nil
}

// BaseTypeName is the type name the base klass's default is_type predicate
// recognizes, the Go analogue of the source library's sc_object_type
// constant.
const BaseTypeName = "object.Object"
