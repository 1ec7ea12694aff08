package ir

import "fmt"

type Type int

const (
	LiteralType Type = iota
	CommentType
	PairType
	VectorType
	SequenceType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LiteralType:  "Literal",
		CommentType:  "Comment",
		PairType:     "Pair",
		VectorType:   "Vector",
		SequenceType: "Sequence",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Literal":  LiteralType,
		"Comment":  CommentType,
		"Pair":     PairType,
		"Vector":   VectorType,
		"Sequence": SequenceType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LiteralType,
		CommentType,
		PairType,
		VectorType,
		SequenceType,
	}
}

// IsText reports whether nodes of type t carry only formatting text.
func (t Type) IsText() bool {
	switch t {
	case LiteralType, CommentType:
		return true
	default:
		return false
	}
}
