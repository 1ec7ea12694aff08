package lineconf

import (
	"strconv"

	"github.com/signadot/lineconf/eval"
	"github.com/signadot/lineconf/ir/ypath"
)

// Hit is an entry selected by a path.
type Hit struct {
	// Path addresses exactly this entry, such as "S[2]/D[1]".
	Path string `json:"path" yaml:"path"`
	// Vector and VectorIndex describe the enclosing vector, if any.
	Vector      string `json:"vector,omitempty" yaml:"vector,omitempty"`
	VectorIndex int    `json:"vectorIndex,omitempty" yaml:"vectorIndex,omitempty"`
	// Name and Index are the name and occurrence index of the entry.
	Name  string `json:"name" yaml:"name"`
	Index int    `json:"index,omitempty" yaml:"index,omitempty"`
	// Value is the raw value, quotes included.
	Value string `json:"value" yaml:"value"`
}

// Env returns the variables a predicate sees for h.
func (h Hit) Env() eval.Env {
	return eval.NewEnv(h.Path, h.Vector, h.Name, h.Index, h.Value)
}

func (h hit) Hit() Hit {
	res := Hit{
		Name:  h.pair.node.Key,
		Index: h.pair.index,
		Value: h.pair.node.Value,
	}
	if h.vector != nil {
		res.Vector = h.vector.node.Key
		res.VectorIndex = h.vector.index
		res.Path = segment(res.Vector, res.VectorIndex) + "/"
	}
	res.Path += segment(res.Name, res.Index)
	return res
}

func segment(name string, index int) string {
	if index == 0 {
		return name
	}
	return name + "[" + strconv.Itoa(index) + "]"
}

// queryPath parses a path for a query, where wildcards are allowed.
func (doc *Document) queryPath(path string) (*ypath.YPath, error) {
	return ypath.Parse(path, ypath.AllowWild(true), ypath.MaxDepth(doc.format.MaxDepth()))
}

func (doc *Document) find(path string) ([]hit, error) {
	p, err := doc.queryPath(path)
	if err != nil {
		return nil, err
	}
	l, err := doc.index()
	if err != nil {
		return nil, err
	}
	return filter(l, p), nil
}

// Find returns the entries selected by path.
func (doc *Document) Find(path string) ([]Hit, error) {
	return doc.FindFunc(path, nil)
}

// FindFunc returns the entries selected by path for which f returns true.
// A nil f selects everything.
func (doc *Document) FindFunc(path string, f func(Hit) (bool, error)) ([]Hit, error) {
	hits, err := doc.find(path)
	if err != nil {
		return nil, err
	}
	res := make([]Hit, 0, len(hits))
	for _, h := range hits {
		x := h.Hit()
		if f != nil {
			ok, err := f(x)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		res = append(res, x)
	}
	return res, nil
}

// Match returns the paths of the entries selected by path.
func (doc *Document) Match(path string) ([]string, error) {
	return paths(doc.Find(path))
}

// MatchValue is Match restricted to entries whose raw value is value.
func (doc *Document) MatchValue(path, value string) ([]string, error) {
	return paths(doc.FindFunc(path, ValueIs(value)))
}

// Get returns the raw values of the entries selected by path.
func (doc *Document) Get(path string) ([]string, error) {
	hits, err := doc.Find(path)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(hits))
	for i, h := range hits {
		res[i] = h.Value
	}
	return res, nil
}

func paths(hits []Hit, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	res := make([]string, len(hits))
	for i, h := range hits {
		res[i] = h.Path
	}
	return res, nil
}

// ValueIs selects hits whose raw value is value.
func ValueIs(value string) func(Hit) (bool, error) {
	return func(h Hit) (bool, error) {
		return h.Value == value, nil
	}
}

// Where compiles an eval predicate into a hit selector.
func Where(src string) (func(Hit) (bool, error), error) {
	p, err := eval.Compile(src)
	if err != nil {
		return nil, err
	}
	return func(h Hit) (bool, error) {
		return p.Match(h.Env())
	}, nil
}
