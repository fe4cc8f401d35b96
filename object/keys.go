package object

import "github.com/google/uuid"

// Key names a slot in an object's entry table. Method keys are derived from
// the dispatcher's name (see MethodKeyOf) so that the framework hooks
// (IsType, Initialize, Finalize, Copy, Write) get stable identities that any
// caller using the same name reproduces, matching spec.md §3's "address of the
// dispatcher" convention. Data keys, which name per-instance storage rather
// than a dispatcher, are minted with NewDataKey.
//
// Key is deliberately opaque and comparable — the runtime never interprets
// it beyond equality and map hashing.
type Key struct {
	id string
}

// dispatcherKeys interns one Key per distinct dispatcher name so repeated
// calls to MethodKeyOf for the same hook return an equal Key, the Go
// analogue of the C original using a function pointer's address as the key.
var dispatcherKeys = map[string]Key{}

// MethodKeyOf returns the stable Key for a named framework dispatcher (or
// any user-chosen operation name). Calling it twice with the same name
// yields equal Keys; this is how user code and the runtime agree on a key
// without sharing a package-level variable.
func MethodKeyOf(name string) Key {
	if k, ok := dispatcherKeys[name]; ok {
		return k
	}
	k := Key{id: "method:" + name}
	dispatcherKeys[name] = k
	return k
}

// NewDataKey mints a fresh, collision-free Key suitable for a data entry
// (object.DataRegister). Unlike method keys, data keys are not meant to be
// recomputed from a name; each call returns a distinct Key.
func NewDataKey() Key {
	return Key{id: "data:" + uuid.New().String()}
}

var (
	keyIsType     = MethodKeyOf("is_type")
	keyInitialize = MethodKeyOf("initialize")
	keyFinalize   = MethodKeyOf("finalize")
	keyCopy       = MethodKeyOf("copy")
	keyWrite      = MethodKeyOf("write")
)
