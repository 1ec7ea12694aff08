package lineconf

import (
	"fmt"

	"github.com/signadot/lineconf/debug"
	"github.com/signadot/lineconf/ir"
)

// entry is a named node of a sequence together with what the index
// knows about it.
type entry struct {
	node   *ir.Node // a pair or a vector
	parent *ir.Node // the sequence holding node
	index  int      // 1-based occurrence, 0 if the name is unique
	body   *lookup  // vectors only
}

// lookup maps names to their entries, in document order. order holds
// every entry of the sequence in document order.
type lookup struct {
	order   []*entry
	entries map[string][]*entry
}

// buildLookup indexes seq. Vectors are only allowed when vectors is set,
// and their bodies are indexed without vectors.
func buildLookup(seq *ir.Node, vectors bool) (*lookup, error) {
	if seq == nil || seq.Type != ir.SequenceType {
		return nil, fmt.Errorf("%w: cannot index a non sequence", ir.ErrInvalidTree)
	}
	l := &lookup{entries: map[string][]*entry{}}
	for _, v := range seq.Values {
		e := &entry{node: v, parent: seq}
		switch v.Type {
		case ir.LiteralType, ir.CommentType:
			continue
		case ir.PairType:
		case ir.VectorType:
			if !vectors {
				return nil, fmt.Errorf("%w: unexpected vector %s", ir.ErrInvalidTree, v.Key)
			}
			body, err := buildLookup(v.Body, false)
			if err != nil {
				return nil, err
			}
			e.body = body
		default:
			return nil, fmt.Errorf("%w: unexpected %s", ir.ErrInvalidTree, v.Type)
		}
		l.order = append(l.order, e)
		l.entries[v.Key] = append(l.entries[v.Key], e)
	}
	for _, es := range l.entries {
		if len(es) < 2 {
			continue
		}
		for i, e := range es {
			e.index = i + 1
		}
	}
	if debug.Index() {
		debug.Logf("indexed %d names over %d nodes", len(l.entries), len(seq.Values))
	}
	return l, nil
}

// byNode returns the entries of l and of the vector bodies it holds,
// keyed by node.
func (l *lookup) byNode() map[*ir.Node]*entry {
	res := map[*ir.Node]*entry{}
	var walk func(*lookup)
	walk = func(l *lookup) {
		for _, es := range l.entries {
			for _, e := range es {
				res[e.node] = e
				if e.body != nil {
					walk(e.body)
				}
			}
		}
	}
	walk(l)
	return res
}

// index builds the lookup of the document tree.
func (doc *Document) index() (*lookup, error) {
	root, err := doc.Parse()
	if err != nil {
		return nil, err
	}
	return buildLookup(root, doc.format.HasVectors())
}
