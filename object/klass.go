package object

// KlassNew allocates a fresh object and registers the base framework
// methods on it (is_type, finalize, write), then initializes it. The
// result is itself the "root class": other objects delegate to it to
// inherit these defaults, per spec.md §4.7.
func KlassNew() *Object {
	o := Alloc()

	a1 := MethodRegister(o, keyIsType, defaultIsType)
	a2 := MethodRegister(o, keyFinalize, defaultFinalize)
	a3 := MethodRegister(o, keyWrite, defaultWrite)
	assertf(a1 && a2 && a3, "KlassNew", "base method registration collided with an existing entry")

	Initialize(o, nil)

	return o
}

// NewFromKlass allocates a fresh object delegating to d and initializes it
// with args, per spec.md §4.7.
func NewFromKlass(d *Object, args *Args) *Object {
	assertf(d != nil, "NewFromKlass", "delegate must not be nil")

	o := Alloc()
	o.delegates.push(d)
	Initialize(o, args)

	return o
}

// NewFromKlassArgs is the convenience variant of NewFromKlass that builds
// its Args bag from a flat list of named values, replacing the C library's
// NUL-terminated new_from_klassf/new_from_klassv varargs pair (see
// DESIGN.md Open Question 4).
func NewFromKlassArgs(d *Object, kvs ...KV) *Object {
	return NewFromKlass(d, NewArgs(kvs...))
}
