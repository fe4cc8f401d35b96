package object

import "testing"

func TestAllocRefcount(t *testing.T) {
	o := Alloc()
	if got := o.Refs(); got != 1 {
		t.Fatalf("Refs() = %d, want 1", got)
	}
}

func TestRefUnrefBalanced(t *testing.T) {
	o := Alloc()
	o.Ref()
	if got := o.Refs(); got != 2 {
		t.Fatalf("Refs() after Ref = %d, want 2", got)
	}
	o.Unref()
	if got := o.Refs(); got != 1 {
		t.Fatalf("Refs() after Unref = %d, want 1", got)
	}
}

func TestDupThenUnrefIsNoop(t *testing.T) {
	o := Alloc()
	before := o.Refs()
	o.Dup().Unref()
	if got := o.Refs(); got != before {
		t.Fatalf("Refs() after Dup+Unref = %d, want %d (no-op)", got, before)
	}
}

func TestUnrefToZeroFinalizes(t *testing.T) {
	kl := KlassNew()
	defer kl.Unref()

	child := NewFromKlass(kl, nil)
	child.Unref() // drives refcount to 0, triggers Finalize

	// After Finalize, the delegate stack is unwound: kl's refcount, which
	// child's Unref released, must have dropped back down.
	if got := kl.Refs(); got != 1 {
		t.Fatalf("kl.Refs() after child finalized = %d, want 1", got)
	}
}

func TestRefOnDeadObjectPanics(t *testing.T) {
	o := KlassNew()
	o.Unref() // refcount -> 0, finalizes

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Ref of a dead object")
		}
	}()
	o.Ref()
}
