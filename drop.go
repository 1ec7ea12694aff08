package lineconf

import (
	"slices"

	"github.com/signadot/lineconf/debug"
	"github.com/signadot/lineconf/ir"
)

// Drop removes every entry selected by path. Wildcards are allowed. A
// vector left without pairs is removed as well.
func (doc *Document) Drop(path string) (int, error) {
	return doc.DropFunc(path, nil)
}

// DropValue is Drop restricted to entries whose raw value is value.
func (doc *Document) DropValue(path, value string) (int, error) {
	return doc.DropFunc(path, ValueIs(value))
}

// DropFunc is Drop restricted to entries for which f returns true. It
// returns the number of entries removed. Nothing is removed if f fails.
// Afterwards every vector without pairs is removed, whether or not this
// drop emptied it.
func (doc *Document) DropFunc(path string, f func(Hit) (bool, error)) (int, error) {
	hits, err := doc.find(path)
	if err != nil {
		return 0, err
	}
	var drop []hit
	for _, h := range hits {
		if f != nil {
			ok, err := f(h.Hit())
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
		}
		drop = append(drop, h)
	}
	n := 0
	for _, h := range drop {
		if debug.Drop() {
			debug.Logf("drop %s", h.Hit().Path)
		}
		if h.vector != nil {
			if dropItem(h.pair.parent, h.pair.node) {
				n++
			}
			continue
		}
		if h.pair.parent.Remove(h.pair.node) {
			n++
		}
	}
	doc.dropEmptyVectors()
	return n, nil
}

// dropItem removes pair from a vector body. When pair was the last one,
// the comma separating it from the pair before goes with it.
func dropItem(body, pair *ir.Node) bool {
	pairs := body.Pairs()
	last := len(pairs) > 0 && pairs[len(pairs)-1] == pair
	if !body.Remove(pair) {
		return false
	}
	if !last || commaAt(pair.SuffixText()) >= 0 {
		return true
	}
	if pairs = body.Pairs(); len(pairs) > 0 {
		prev := pairs[len(pairs)-1]
		if prev.Suffix != nil {
			prev.Suffix = ir.FromText(withoutComma(prev.Suffix.Text))
		}
	}
	return true
}

func (doc *Document) dropEmptyVectors() {
	for _, v := range slices.Clone(doc.root.Values) {
		if v.Type != ir.VectorType || len(v.Pairs()) > 0 {
			continue
		}
		if doc.root.Remove(v) && debug.Drop() {
			debug.Logf("drop empty vector %s", v.Key)
		}
	}
}
