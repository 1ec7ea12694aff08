package lineconf

import (
	"fmt"
	"strings"

	"github.com/signadot/lineconf/debug"
	"github.com/signadot/lineconf/encode"
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/ir/ypath"
	"github.com/signadot/lineconf/parse"
)

// Put sets the value of the entry at path, adding the entry if it does
// not exist. An index of 0 always adds a new occurrence. Wildcards are
// not allowed.
//
// New top level entries are appended to the document. A new entry in an
// existing vector takes the indentation of the last pair of the vector,
// and that pair's trailing comment or line end moves to the new pair.
func (doc *Document) Put(path, value string) error {
	p, err := ypath.Parse(path, ypath.MaxDepth(doc.format.MaxDepth()))
	if err != nil {
		return err
	}
	if !parse.ValidValue(doc.format, value) {
		return fmt.Errorf("%w for %s: %q", ErrInvalidValue, doc.format, value)
	}
	l, err := doc.index()
	if err != nil {
		return err
	}
	if debug.Put() {
		debug.Logf("put %s = %q", p, value)
	}
	item := p.Next
	es := l.entries[p.Name]
	if len(es) == 0 || p.IsAll() {
		return doc.appendEntry(p.Name, item, value)
	}
	e, err := selectOne(es, p)
	if err != nil {
		return err
	}
	if (item == nil) != (e.node.Type == ir.PairType) {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidPath, path, e.node.Type)
	}
	if item == nil {
		e.node.Value = value
		return nil
	}
	ies := e.body.entries[item.Name]
	if len(ies) == 0 || item.IsAll() {
		appendItem(e.node.Body, item.Name, value)
		return nil
	}
	ie, err := selectOne(ies, item)
	if err != nil {
		return err
	}
	if ie.node.Type != ir.PairType {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidPath, path, ie.node.Type)
	}
	ie.node.Value = value
	return nil
}

// selectOne picks the occurrence p names among es, which is not empty.
func selectOne(es []*entry, p *ypath.YPath) (*entry, error) {
	if p.Index == nil {
		if len(es) > 1 {
			return nil, fmt.Errorf("%w: %d entries named %s", ErrAmbiguousMatch, len(es), p.Name)
		}
		return es[0], nil
	}
	i := *p.Index
	if i < 1 || i > len(es) {
		return nil, fmt.Errorf("%w: no %s", ErrEmptyMatch, p.SegmentString())
	}
	return es[i-1], nil
}

// appendEntry adds a pair, or a vector holding one pair, at the end of the
// document.
func (doc *Document) appendEntry(key string, item *ypath.YPath, value string) error {
	root := doc.root
	if n := len(root.Values); n > 0 {
		last, err := doc.RenderNode(root.Values[n-1])
		if err != nil {
			return err
		}
		if !strings.HasSuffix(last, "\n") {
			root.Append(ir.Literal("\n"))
		}
	}
	if item == nil {
		sep := " = "
		if !doc.format.HasVectors() {
			sep = "="
		}
		root.Append(ir.NewPair("", key, sep, value, ir.Literal("\n")))
		return nil
	}
	body := ir.NewSequence(
		ir.Literal("\n"),
		ir.NewPair(" ", item.Name, " = ", value, ir.Literal(" ")),
	)
	root.Append(ir.NewVector("", key, " = ", body, ir.Literal("\n")))
	return nil
}

// appendItem adds a pair at the end of a vector body.
func appendItem(body *ir.Node, key, value string) {
	in := inferVectorIndent(body)
	if in.prev != nil {
		in.prev.Suffix = in.prevSuffix
	}
	if debug.Put() {
		debug.Logf("append %s to vector with prefix %q suffix %q", key, in.nextPrefix, encode.MustString(in.nextSuffix))
	}
	body.Append(ir.NewPair(in.nextPrefix, key, " = ", value, in.nextSuffix))
}

type vectorIndent struct {
	prev       *ir.Node // last pair of the body, if any
	prevSuffix *ir.Node
	nextPrefix string
	nextSuffix *ir.Node
}

// inferVectorIndent decides the formatting of a pair appended to body.
// The new pair takes the prefix of the last pair, and the last pair gets
// a comma if it has none. A trailing comment stays with the last pair,
// which the new one follows on the same line. Otherwise the new pair
// takes over the suffix of the last pair, and the last pair ends its line
// if the vector spans several lines.
func inferVectorIndent(body *ir.Node) vectorIndent {
	hasEOL := false
	var prev *ir.Node
	for _, v := range body.Values {
		switch v.Type {
		case ir.LiteralType, ir.CommentType:
			if strings.Contains(v.Text, "\n") {
				hasEOL = true
			}
		case ir.PairType:
			if strings.Contains(v.SuffixText(), "\n") {
				hasEOL = true
			}
			prev = v
		}
	}
	res := vectorIndent{prev: prev, nextSuffix: ir.Literal("")}
	if prev == nil {
		return res
	}
	res.nextPrefix = prev.Prefix
	if prev.Suffix.IsComment() {
		res.prevSuffix = ir.Comment(withComma(prev.Suffix.Text))
		res.nextSuffix = ir.Literal(" ")
		return res
	}
	if hasEOL {
		res.prevSuffix = ir.Literal(",\n")
	} else {
		res.prevSuffix = ir.Literal(",")
	}
	if prev.Suffix != nil {
		res.nextSuffix = prev.Suffix.Clone()
	}
	return res
}

// commaAt returns the offset of the comma that separates a vector pair
// from the next one in suffix text s, or -1.
func commaAt(s string) int {
	i := strings.IndexFunc(s, func(r rune) bool { return r != ' ' && r != '\t' })
	if i < 0 || s[i] != ',' {
		return -1
	}
	return i
}

func withComma(s string) string {
	if commaAt(s) >= 0 {
		return s
	}
	return "," + s
}

func withoutComma(s string) string {
	i := commaAt(s)
	if i < 0 {
		return s
	}
	return s[:i] + s[i+1:]
}
