// Package object implements a small, single-threaded, prototype-based
// object runtime: per-instance method/data tables composed over a directed
// delegation graph, dispatched by a cycle-protected recursive search.
// Reference counting manages object lifetime; construction, destruction,
// copying, and type tests are themselves dispatchable operations rather than
// language built-ins (lifecycle.go).
//
// # Concurrency
//
// The runtime is single-threaded by design (spec.md §5): no Object method
// synchronizes access, and no operation may run concurrently with another
// operation on the same object (or on any object reachable through its
// delegate graph) from a different goroutine. This mirrors the source
// library exactly and is a deliberate scope cut, not an oversight — see
// Non-goals in SPEC_FULL.md.
//
// # Lifetime cycles leak
//
// If two objects delegate to each other, each holding a reference on the
// other, neither will ever reach a refcount of zero. The runtime performs no
// cycle collection; it only guards a single search against infinite
// recursion (Search's visited set). The intended discipline is tree- or
// DAG-shaped delegation. This is documented, not fixed — see DESIGN.md Open
// Question 3.
package object

// Object is a runtime-allocated instance: a refcount, an ordered sequence of
// delegate objects, an optional entry table, and one opaque data slot the
// runtime itself never reads or writes (spec.md §3).
type Object struct {
	refs      int
	delegates delegates
	table     entryTable // created lazily on first registration

	// Data is a convenience slot for subclass state. The runtime does not
	// interpret it in any way.
	Data any
}

// Alloc returns a freshly allocated Object: refcount 1, no delegates, no
// entry table, nil Data.
func Alloc() *Object {
	return &Object{refs: 1}
}

// Refs reports the current reference count. Exposed for introspection and
// tests; inside the package, Dump and the default write method read the
// count directly.
func (o *Object) Refs() int {
	return o.refs
}

// Ref increments the reference count. Panics if the object is already dead
// (refcount <= 0) — per spec.md §4.1, ref/unref on a zero refcount is
// undefined and must be asserted against.
func (o *Object) Ref() {
	assertf(o.refs > 0, "Ref", "ref on object with refcount %d", o.refs)
	o.refs++
}

// Unref decrements the reference count. When it reaches zero, Finalize runs
// and the object's storage must not be accessed again.
func (o *Object) Unref() {
	assertf(o.refs > 0, "Unref", "unref on object with refcount %d", o.refs)
	o.refs--
	if o.refs == 0 {
		Finalize(o)
	}
}

// Dup increments the reference count and returns o, for the common
// "take a reference and hand back the pointer" call shape.
func (o *Object) Dup() *Object {
	o.Ref()
	return o
}
