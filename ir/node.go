package ir

import (
	"slices"
	"strings"
)

type Node struct {
	Type Type

	// Text holds LiteralType and CommentType content.
	Text string

	// Prefix, Key, Sep and Suffix are used by PairType and VectorType,
	// Value by PairType and Body by VectorType.
	Prefix string
	Key    string
	Sep    string
	Value  string
	Body   *Node
	Suffix *Node

	// Values holds the children of a SequenceType.
	Values []*Node
}

func Literal(s string) *Node {
	return &Node{Type: LiteralType, Text: s}
}

func Comment(s string) *Node {
	return &Node{Type: CommentType, Text: s}
}

// FromText classifies s: text containing a '#' is a comment, anything else
// is a literal.
func FromText(s string) *Node {
	if strings.Contains(s, "#") {
		return Comment(s)
	}
	return Literal(s)
}

func NewPair(prefix, key, sep, value string, suffix *Node) *Node {
	return &Node{
		Type:   PairType,
		Prefix: prefix,
		Key:    key,
		Sep:    sep,
		Value:  value,
		Suffix: suffix,
	}
}

func NewVector(prefix, key, sep string, body, suffix *Node) *Node {
	return &Node{
		Type:   VectorType,
		Prefix: prefix,
		Key:    key,
		Sep:    sep,
		Body:   body,
		Suffix: suffix,
	}
}

func NewSequence(vs ...*Node) *Node {
	return &Node{Type: SequenceType, Values: vs}
}

// SuffixText returns the text of the suffix of a pair or vector.
func (y *Node) SuffixText() string {
	if y.Suffix == nil {
		return ""
	}
	return y.Suffix.Text
}

func (y *Node) IsComment() bool {
	return y != nil && y.Type == CommentType
}

// Append adds vs at the end of a sequence.
func (y *Node) Append(vs ...*Node) {
	y.Values = append(y.Values, vs...)
}

// IndexOf returns the position of child in the sequence y, comparing by
// identity, or -1.
func (y *Node) IndexOf(child *Node) int {
	for i, v := range y.Values {
		if v == child {
			return i
		}
	}
	return -1
}

// Remove deletes the first occurrence of child from the sequence y.
func (y *Node) Remove(child *Node) bool {
	i := y.IndexOf(child)
	if i == -1 {
		return false
	}
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Pairs returns the pairs held directly by a sequence, or by the body of a
// vector.
func (y *Node) Pairs() []*Node {
	seq := y
	if y.Type == VectorType {
		seq = y.Body
	}
	if seq == nil {
		return nil
	}
	var res []*Node
	for _, v := range seq.Values {
		if v.Type == PairType {
			res = append(res, v)
		}
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	*res = *y
	res.Body = y.Body.Clone()
	res.Suffix = y.Suffix.Clone()
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}
