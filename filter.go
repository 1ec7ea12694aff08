package lineconf

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/signadot/lineconf/debug"
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/ir/ypath"
)

// hit is a pair selected by a path, with the vector holding it.
type hit struct {
	vector *entry // nil at the top level
	pair   *entry
}

// filter returns the pairs of l selected by p, in document order.
func filter(l *lookup, p *ypath.YPath) []hit {
	res := filterLookup(l, p, nil)
	if debug.Filter() {
		debug.Logf("filter %s: %d hits", p, len(res))
	}
	return res
}

func filterLookup(l *lookup, p *ypath.YPath, outer *entry) []hit {
	if p == nil {
		return nil
	}
	var res []hit
	for _, e := range l.order {
		if !globMatch(p.Name, e.node.Key) {
			continue
		}
		if !selects(p, e, len(l.entries[e.node.Key])) {
			continue
		}
		res = append(res, filterEntry(e, p.Next, outer)...)
	}
	return res
}

// selects applies the index of p to e, one of n occurrences of a name.
// Without an index, or with index 0 on a repeated name, every occurrence
// is kept. Otherwise only the indexed occurrence is, which for a unique
// name means index 1.
func selects(p *ypath.YPath, e *entry, n int) bool {
	switch {
	case p.Index == nil:
		return true
	case *p.Index == 0:
		return n > 1
	case n == 1:
		return *p.Index == 1
	default:
		return *p.Index == e.index
	}
}

// filterEntry keeps a pair when the path ends at it, and descends into a
// vector when it does not.
func filterEntry(e *entry, rest *ypath.YPath, outer *entry) []hit {
	switch e.node.Type {
	case ir.PairType:
		if rest == nil {
			return []hit{{vector: outer, pair: e}}
		}
	case ir.VectorType:
		return filterLookup(e.body, rest, e)
	}
	return nil
}

func globMatch(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
