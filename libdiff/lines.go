package libdiff

import (
	"errors"
	"fmt"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Change is one entry of a diff.
type Change struct {
	Op   Op
	Text string
}

func (c Change) String() string {
	return c.Op.String() + " " + c.Text
}

// ErrTooManyValues is returned by Lines when the inputs hold more
// distinct elements than there are runes to stand for them.
var ErrTooManyValues = errors.New("too many distinct values to diff")

const firstValue = 0xE000

// maxValues bounds the distinct elements Lines accepts.
var maxValues int = utf8.MaxRune - firstValue + 1

// Lines diffs from against to, treating each string as an opaque
// element. Equal elements are reported too so that the result
// describes the whole of both inputs.
func Lines(from, to []string) ([]Change, error) {
	m := map[string]rune{}
	fromRunes, err := mapValues(m, from)
	if err != nil {
		return nil, err
	}
	toRunes, err := mapValues(m, to)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := make([]Change, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				res = append(res, Change{Op: Delete, Text: from[fi]})
				fi++
			case diffpatch.DiffInsert:
				res = append(res, Change{Op: Insert, Text: to[ti]})
				ti++
			case diffpatch.DiffEqual:
				res = append(res, Change{Op: Equal, Text: from[fi]})
				fi++
				ti++
			}
		}
	}
	return res, nil
}

// Changed reports whether cs has any insertion or deletion.
func Changed(cs []Change) bool {
	for _, c := range cs {
		if c.Op != Equal {
			return true
		}
	}
	return false
}

// mapValues gives each distinct string a rune of its own. Runes start
// past the surrogate range so every one survives conversion to a string.
func mapValues(m map[string]rune, vs []string) ([]rune, error) {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		r, ok := m[v]
		if !ok {
			if len(m) >= maxValues {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyValues, maxValues)
			}
			r = rune(firstValue + len(m))
			m[v] = r
		}
		rs[i] = r
	}
	return rs, nil
}
