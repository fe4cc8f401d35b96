package object

import (
	"bytes"
	"strings"
	"testing"
)

// TestInitializeOrder is spec.md §8 scenario 4: initializers run in reverse
// visitation order — base before derived. Hooking keyInitialize directly
// (rather than MethodKeyOf-ing a fresh name) is what puts these closures on
// the same dispatch path Initialize itself searches.
func TestInitializeOrder(t *testing.T) {
	var log []string

	base := KlassNew()
	defer base.Unref()
	MethodRegister(base, keyInitialize, func(top, match *Object, args ...any) any {
		log = append(log, "B")
		return nil
	})

	mid := NewFromKlass(base, nil)
	defer mid.Unref()
	MethodRegister(mid, keyInitialize, func(top, match *Object, args ...any) any {
		log = append(log, "M")
		return nil
	})

	log = nil // mid's own construction already ran base's initializer once
	top := NewFromKlass(mid, nil)
	defer top.Unref()

	if got := strings.Join(log, ","); got != "B,M" {
		t.Fatalf("initialize order = %q, want \"B,M\"", got)
	}
}

// TestFinalizeOrder is spec.md §8 scenario 5: finalizers run in forward
// visitation order — derived before base. Registering "B" on base replaces
// the klass's default finalizer, so this test checks the order only; the
// default finalizer's delegate unwinding is covered by
// TestUnrefToZeroFinalizes.
func TestFinalizeOrder(t *testing.T) {
	var log []string

	base := KlassNew()
	defer base.Unref()
	MethodRegister(base, keyFinalize, func(top, match *Object, args ...any) any {
		log = append(log, "B")
		return nil
	})

	mid := NewFromKlass(base, nil)
	defer mid.Unref()
	MethodRegister(mid, keyFinalize, func(top, match *Object, args ...any) any {
		log = append(log, "M")
		return nil
	})

	top := NewFromKlass(mid, nil)
	MethodRegister(top, keyFinalize, func(top, match *Object, args ...any) any {
		log = append(log, "T")
		return nil
	})

	top.Unref() // drives top to refcount 0, finalizes

	if got := strings.Join(log, ","); got != "T,M,B" {
		t.Fatalf("finalize order = %q, want \"T,M,B\"", got)
	}
}

// TestCopyFidelity is spec.md §8 scenario 6.
func TestCopyFidelity(t *testing.T) {
	kl := KlassNew()
	defer kl.Unref()

	o := NewFromKlass(kl, nil)
	defer o.Unref()

	keyData := NewDataKey()
	buf := DataRegister(o, keyData, 4)
	buf[0] = 0x7

	MethodRegister(o, keyCopy, func(top, match *Object, args ...any) any {
		dst, _ := args[0].(*Object)
		srcBuf := DataLookup(top, keyData)
		dstBuf := DataRegister(dst, keyData, len(srcBuf))
		copy(dstBuf, srcBuf)
		return nil
	})

	cp := Copy(o)
	defer cp.Unref()

	if len(cp.delegates) != 1 || cp.delegates[0] != kl {
		t.Fatal("Copy did not preserve the delegate list")
	}
	if kl.Refs() != 3 { // KlassNew's own ref + o's delegate ref + cp's delegate ref
		t.Fatalf("kl.Refs() = %d, want 3", kl.Refs())
	}

	gotBuf := DataLookup(cp, keyData)
	if gotBuf[0] != 0x7 {
		t.Fatal("Copy did not invoke the registered copy method")
	}
}

func TestWriteDefault(t *testing.T) {
	o := KlassNew()
	defer o.Unref()

	var buf bytes.Buffer
	Write(o, &buf)
	if !strings.Contains(buf.String(), "refs") {
		t.Fatalf("Write output %q does not look like the default descriptor", buf.String())
	}
}
