package parse

import (
	"fmt"

	"github.com/signadot/lineconf/debug"
	"github.com/signadot/lineconf/format"
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/token"
)

// Parse parses d into a sequence node. The default dialect is
// format.OneFormat.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.OneFormat}
	for _, f := range opts {
		f(pOpts)
	}
	doc, err := grammar(pOpts.format)
	if err != nil {
		return nil, err
	}
	res, err := token.Run(doc, d)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %s: %v", pOpts.format, err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse %s: %d top level nodes", pOpts.format, len(res.Values))
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func grammar(f format.Format) (token.Parser[*ir.Node], error) {
	switch f {
	case format.OneFormat:
		return oneDoc, nil
	case format.RCFormat:
		return rcDoc, nil
	default:
		return nil, fmt.Errorf("%w: no grammar for %s", format.ErrNotImplemented, f)
	}
}

// ValidValue reports whether v is exactly one scalar value of dialect f,
// so that it can be stored as the value of a pair without changing how
// the document parses.
func ValidValue(f format.Format, v string) bool {
	var p token.Parser[string]
	switch f {
	case format.OneFormat:
		p = oneValue
	case format.RCFormat:
		p = rcValue
	default:
		return false
	}
	_, err := token.Run(p, []byte(v))
	return err == nil
}
