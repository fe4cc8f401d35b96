package object

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes a structural description of o's delegate graph and entry
// table to w, for interactive debugging. It is a richer sibling to Write's
// one-line descriptor (spec.md §4.6), the same role spew.Dump plays for
// error chains in pkg/fmtt/printe.go, generalized here from an error's
// Unwrap chain to an object's delegate graph.
//
// Dump never mutates o. It guards against cyclic delegate graphs (spec.md
// §5) two ways: a seen-set suppresses revisiting any object already printed
// in this call, and maxDepth caps how deep an unvisited chain is followed;
// pass a generous maxDepth (e.g. 16) unless you specifically want a shallow
// view.
func Dump(w io.Writer, o *Object, maxDepth int) {
	dumpObject(w, o, 0, maxDepth, map[*Object]bool{})
}

func dumpObject(w io.Writer, o *Object, level, remaining int, seen map[*Object]bool) {
	indent := strings.Repeat("  ", level)

	if seen[o] {
		fmt.Fprintf(w, "%s*Object(%p) [already visited]\n", indent, o)
		return
	}
	seen[o] = true

	fmt.Fprintf(w, "%s*Object(%p) refs=%d delegates=%d\n", indent, o, o.refs, len(o.delegates))

	for k, e := range o.table {
		switch {
		case e.isMethod():
			fmt.Fprintf(w, "%s  entry %v: method\n", indent, k)
		case e.isData():
			fmt.Fprintf(w, "%s  entry %v: data (%d bytes)\n", indent, k, len(e.data))
			spew.Fdump(w, e.data)
		}
	}

	if remaining <= 0 {
		if len(o.delegates) > 0 {
			fmt.Fprintf(w, "%s  ... (depth limit reached)\n", indent)
		}
		return
	}

	for i := len(o.delegates); i > 0; i-- {
		dumpObject(w, o.delegates[i-1], level+1, remaining-1, seen)
	}
}
