package object

import (
	"fmt"

	"go.uber.org/zap"
)

// Match pairs an object with the entry it supplied for a searched key, in
// the order Search visited it (spec.md §4.4's "found" output).
type Match struct {
	Object *Object
	entry  *entry
}

// IsMethod reports whether the matched entry is a method entry.
func (m Match) IsMethod() bool { return m.entry.isMethod() }

// Method returns the matched method entry's pointer, or nil if this match is
// a data entry.
func (m Match) Method() Method { return m.entry.method }

// Data returns the matched data entry's buffer, or nil if this match is a
// method entry.
func (m Match) Data() []byte { return m.entry.data }

// CallFn is a search visitor. A non-zero (true) return short-circuits the
// entire search, per spec.md §4.4.
type CallFn func(o *Object, m Match, userData any) bool

// SearchContext bundles one search's acceptance policy, optional visitor,
// and optional match-collection output — spec.md §4.4's parameter list,
// transcribed field for field from sc_object_search_context_t. A zero-value
// SearchContext is not usable; construct with NewSearchContext.
type SearchContext struct {
	Key         Key
	AllowMethod bool
	AllowData   bool

	// Found, if non-nil, receives every match in DFS pre-order visitation
	// order (the order the C original calls "found").
	Found *[]Match

	SkipTop        bool
	AcceptSelf     bool
	AcceptDelegate bool

	CallFn   CallFn
	UserData any

	// LastMatch is set, after Search returns, to the deepest object whose
	// entry was accepted.
	LastMatch *Object

	visited map[*Object]bool
}

// NewSearchContext builds a SearchContext ready for a single Search call
// (or a chain of recursive calls sharing the same context, which Search
// itself manages). allowMethod/allowData are debug-only assertions about
// which entry kinds the caller expects to encounter.
func NewSearchContext(key Key, allowMethod, allowData bool) *SearchContext {
	return &SearchContext{Key: key, AllowMethod: allowMethod, AllowData: allowData}
}

// Search walks o and (unless short-circuited) its delegates, resolving ctx's
// key per spec.md §4.4. It is safe to call Search repeatedly on the same
// ctx across independent top-level invocations; each call manages its own
// visited set.
//
// Return value: if ctx.CallFn is set, Search returns the last CallFn verdict
// reached. Otherwise it returns true iff any match was recorded at o or
// below.
func (ctx *SearchContext) Search(o *Object) bool {
	toplevel := ctx.visited == nil
	if toplevel {
		ctx.visited = make(map[*Object]bool)
	}

	answered := false
	foundSelf := false
	foundDelegate := false

	if !ctx.visited[o] {
		ctx.visited[o] = true

		if !toplevel || !ctx.SkipTop {
			if e := o.table.lookup(ctx.Key); e != nil {
				assertf(!e.isMethod() || ctx.AllowMethod, "Search", "unexpected method entry for key while allowMethod=false")
				assertf(!e.isData() || ctx.AllowData, "Search", "unexpected data entry for key while allowData=false")

				m := Match{Object: o, entry: e}
				if ctx.Found != nil {
					*ctx.Found = append(*ctx.Found, m)
				}
				foundSelf = true
				if ctx.CallFn != nil {
					answered = ctx.CallFn(o, m, ctx.UserData)
				}
				ctx.LastMatch = o
			}
		}

		if !answered && !(foundSelf && ctx.AcceptSelf) {
			for i := len(o.delegates); i > 0; i-- {
				d := o.delegates[i-1]
				a := ctx.Search(d)
				if a {
					foundDelegate = true
					answered = a
					if ctx.CallFn != nil || ctx.AcceptDelegate {
						break
					}
				}
			}
		}
	} else {
		logger.Debug("object: avoiding double recursion",
			zap.String("object", fmt.Sprintf("%p", o)), zap.String("key", ctx.Key.id))
	}

	if toplevel {
		ctx.visited = nil
	}

	if ctx.CallFn != nil {
		return answered
	}
	return foundSelf || foundDelegate
}

// EntrySearch runs a plain match-collecting search (no acceptance
// shortcuts, no visitor) and returns every match found, without asserting a
// match exists. This is the "direct" entry point spec.md §9's Open Questions
// call out for callers that cannot guarantee DataSearch/MethodSearch will
// find anything.
func EntrySearch(o *Object, key Key, allowMethod, allowData, skipTop bool) []Match {
	var found []Match
	ctx := NewSearchContext(key, allowMethod, allowData)
	ctx.Found = &found
	ctx.SkipTop = skipTop
	ctx.Search(o)
	return found
}
