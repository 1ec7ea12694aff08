package lineconf

import (
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/libdiff"
)

// Entries returns "path=value" for every pair of the document, in
// document order.
func (doc *Document) Entries() ([]string, error) {
	l, err := doc.index()
	if err != nil {
		return nil, err
	}
	byNode := l.byNode()
	var res []string
	add := func(v, p *ir.Node) {
		h := hit{pair: byNode[p]}
		if v != nil {
			h.vector = byNode[v]
		}
		x := h.Hit()
		res = append(res, x.Path+"="+x.Value)
	}
	for _, v := range doc.root.Values {
		switch v.Type {
		case ir.PairType:
			add(nil, v)
		case ir.VectorType:
			for _, p := range v.Pairs() {
				add(v, p)
			}
		}
	}
	return res, nil
}

// Diff compares the entries of two documents. Formatting and comments are
// not compared.
func Diff(a, b *Document) ([]libdiff.Change, error) {
	from, err := a.Entries()
	if err != nil {
		return nil, err
	}
	to, err := b.Entries()
	if err != nil {
		return nil, err
	}
	return libdiff.Lines(from, to)
}
