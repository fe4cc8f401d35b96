package object

// delegates is the ordered sequence of owning references an object holds to
// its parents. The top (last pushed, highest index) is searched first —
// spec.md §4.3's LIFO convention. A plain slice is the idiomatic transcription
// of spec.md §6's "resizable array primitive"; see DESIGN.md for why no
// third-party container replaces it here.
type delegates []*Object

// push acquires a reference on d and appends it to the sequence.
func (ds *delegates) push(d *Object) {
	d.Ref()
	*ds = append(*ds, d)
}

// pop removes and releases the reference on the top delegate. Panics if the
// sequence is empty — popping an empty delegate stack is a programmer error,
// not a recoverable condition.
func (ds *delegates) pop() {
	d := ds.top()
	*ds = (*ds)[:len(*ds)-1]
	d.Unref()
}

// popAll releases references to every delegate, top-down (index n-1 down to
// 0, exactly as spec.md §4.3 specifies), then clears the sequence.
func (ds *delegates) popAll() {
	for i := len(*ds); i > 0; i-- {
		(*ds)[i-1].Unref()
	}
	*ds = nil
}

// index returns the i-th delegate; 0 is the bottom (oldest).
func (ds delegates) index(i int) *Object {
	assertf(i >= 0 && i < len(ds), "delegate.index", "index %d out of range [0,%d)", i, len(ds))
	return ds[i]
}

// top returns the most recently pushed delegate.
func (ds delegates) top() *Object {
	assertf(len(ds) > 0, "delegate.top", "delegate stack is empty")
	return ds[len(ds)-1]
}

// DelegatePush pushes d onto o's delegate stack, acquiring a reference on d.
// This is the public surface for building the delegation graph itself —
// spec.md §3/§4.3's directed, possibly cyclic graph of multiple delegates
// per object — matching the source library's sc_object_delegate_push.
func (o *Object) DelegatePush(d *Object) {
	o.delegates.push(d)
}

// DelegatePop pops and releases o's topmost delegate. Panics if o has no
// delegates.
func (o *Object) DelegatePop() {
	o.delegates.pop()
}

// DelegatePopAll releases every one of o's delegates, top-down, and clears
// the stack.
func (o *Object) DelegatePopAll() {
	o.delegates.popAll()
}

// DelegateIndex returns o's i-th delegate; 0 is the bottom (oldest).
func (o *Object) DelegateIndex(i int) *Object {
	return o.delegates.index(i)
}
