package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/lineconf/format"
	"github.com/signadot/lineconf/ir"
)

type EncState struct {
	format format.Format
	buf    strings.Builder

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the text of node to w. Nothing is written if the tree
// cannot be rendered.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.format.Valid() {
		return fmt.Errorf("%w: no encoder for %s", format.ErrNotImplemented, es.format)
	}
	if err := encode(node, es, true); err != nil {
		return err
	}
	_, err := io.WriteString(w, es.buf.String())
	return err
}

// EncodeString is Encode into a string.
func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(node *ir.Node, es *EncState, top bool) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ir.ErrInvalidTree)
	}
	switch node.Type {
	case ir.LiteralType:
		es.write(ir.LiteralType, ValueColor, node.Text)
	case ir.CommentType:
		es.write(ir.CommentType, ValueColor, node.Text)
	case ir.PairType:
		encodePair(node, es)
		return encodeText(node.Suffix, es)
	case ir.VectorType:
		if !es.format.HasVectors() {
			return fmt.Errorf("%w: %s has no vectors", ir.ErrInvalidTree, es.format)
		}
		return encodeVector(node, es)
	case ir.SequenceType:
		if !top {
			return fmt.Errorf("%w: nested sequence", ir.ErrInvalidTree)
		}
		for _, v := range node.Values {
			if err := encode(v, es, false); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown node type %d", ir.ErrInvalidTree, node.Type)
	}
	return nil
}

// encodePair writes a pair up to and excluding its suffix.
func encodePair(node *ir.Node, es *EncState) {
	es.write(ir.PairType, SepColor, node.Prefix)
	es.write(ir.PairType, FieldColor, node.Key)
	es.write(ir.PairType, SepColor, node.Sep)
	es.write(ir.PairType, ValueColor, node.Value)
}

func encodeText(node *ir.Node, es *EncState) error {
	if node == nil {
		return nil
	}
	if !node.Type.IsText() {
		return fmt.Errorf("%w: %s suffix", ir.ErrInvalidTree, node.Type)
	}
	es.write(node.Type, ValueColor, node.Text)
	return nil
}

func encodeVector(node *ir.Node, es *EncState) error {
	body := node.Body
	if body == nil || body.Type != ir.SequenceType {
		return fmt.Errorf("%w: vector %s without body", ir.ErrInvalidTree, node.Key)
	}
	es.write(ir.VectorType, SepColor, node.Prefix)
	es.write(ir.VectorType, FieldColor, node.Key)
	es.write(ir.VectorType, SepColor, node.Sep)
	es.write(ir.VectorType, BracketColor, "[")
	for _, v := range body.Values {
		switch v.Type {
		case ir.LiteralType, ir.CommentType:
			es.write(v.Type, ValueColor, v.Text)
		case ir.PairType:
			encodePair(v, es)
			if err := encodeText(v.Suffix, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s in vector %s", ir.ErrInvalidTree, v.Type, node.Key)
		}
	}
	es.write(ir.VectorType, BracketColor, "]")
	return encodeText(node.Suffix, es)
}

func (es *EncState) write(t ir.Type, a ColorAttr, s string) {
	if s == "" {
		return
	}
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.buf.WriteString(s)
}
