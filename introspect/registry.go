package introspect

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/sclib/scobject/object"
)

// Registry is a concurrent, in-memory store of named root objects (klasses
// or instances an operator wants visible for debugging), indexed by name.
//
// Data structures:
//   - Mutable state (names + pos + map) guarded by RWMutex
//
// Iteration is deterministic (ascending name). Reads use shared (R) locks;
// writes use exclusive (W) locks. Adapted from the teacher's int64-keyed
// ObjectStore (see DESIGN.md) to a string-keyed store, since a registry of
// named klasses has no natural integer identity.
//
// Registry does not take ownership of the references it holds: callers
// remain responsible for Ref/Unref on anything they Register.
type Registry struct {
	log *zap.Logger

	mu sync.RWMutex
	st registryState
}

type registryState struct {
	byName map[string]*object.Object
	names  []string
	pos    map[string]int
}

// NewRegistry constructs a ready-to-use Registry.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		log: log,
		st: registryState{
			byName: make(map[string]*object.Object),
			names:  make([]string, 0),
			pos:    make(map[string]int),
		},
	}
}

// Register inserts or overwrites o at name.
func (r *Registry) Register(name string, o *object.Object) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.st.pos[name]; exists {
		r.st.byName[name] = o
		return
	}

	insertIdx := sort.Search(len(r.st.names), func(i int) bool { return r.st.names[i] >= name })

	r.st.names = append(r.st.names, "")
	copy(r.st.names[insertIdx+1:], r.st.names[insertIdx:])
	r.st.names[insertIdx] = name

	r.st.byName[name] = o
	for i := insertIdx; i < len(r.st.names); i++ {
		r.st.pos[r.st.names[i]] = i
	}

	r.log.Debug("registered", zap.String("name", name))
}

// Unregister removes name if present; idempotent.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.st.pos[name]
	if !ok {
		return
	}

	delete(r.st.byName, name)
	delete(r.st.pos, name)

	copy(r.st.names[idx:], r.st.names[idx+1:])
	r.st.names = r.st.names[:len(r.st.names)-1]

	for i := idx; i < len(r.st.names); i++ {
		r.st.pos[r.st.names[i]] = i
	}
}

// Get returns (object, ok) for name.
func (r *Registry) Get(name string) (*object.Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.st.byName[name]
	return o, ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.st.names))
	copy(out, r.st.names)
	return out
}
