package ypath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/lineconf/token"
)

var ErrInvalidPath = errors.New("invalid path")

// YPath is one segment of a path, linked to the segment below it.
type YPath struct {
	Name  string
	Index *int // nil when no index was given
	Next  *YPath
}

// String returns the path in its textual form.
func (p *YPath) String() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for x := p; x != nil; x = x.Next {
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(x.SegmentString())
	}
	return b.String()
}

// SegmentString returns the textual form of p alone.
func (p *YPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Index == nil {
		return p.Name
	}
	return p.Name + "[" + strconv.Itoa(*p.Index) + "]"
}

// Depth returns the number of segments of p.
func (p *YPath) Depth() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// IsWild reports whether any segment name contains a wildcard.
func (p *YPath) IsWild() bool {
	for x := p; x != nil; x = x.Next {
		if strings.Contains(x.Name, "*") {
			return true
		}
	}
	return false
}

// IsAll reports whether the segment selects all occurrences with an
// explicit index 0.
func (p *YPath) IsAll() bool {
	return p != nil && p.Index != nil && *p.Index == 0
}

type parseOpts struct {
	wild     bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// AllowWild permits '*' in names.
func AllowWild(v bool) ParseOption {
	return func(o *parseOpts) { o.wild = v }
}

// MaxDepth limits the number of segments. The default is 2.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

type segment struct {
	name  string
	index string
}

// Parse parses s into a path.
func Parse(s string, opts ...ParseOption) (*YPath, error) {
	o := &parseOpts{maxDepth: 2}
	for _, opt := range opts {
		opt(o)
	}
	segs, err := token.Run(pathParser(o.wild), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, s, err)
	}
	if len(segs) > o.maxDepth {
		return nil, fmt.Errorf("%w %q: at most %d segments allowed", ErrInvalidPath, s, o.maxDepth)
	}
	var res, last *YPath
	for _, seg := range segs {
		p := &YPath{Name: seg.name}
		if seg.index != "" {
			i, err := strconv.Atoi(seg.index)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, s, err)
			}
			p.Index = &i
		}
		if last == nil {
			res = p
		} else {
			last.Next = p
		}
		last = p
	}
	return res, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string, opts ...ParseOption) *YPath {
	p, err := Parse(s, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func pathParser(wild bool) token.Parser[[]segment] {
	seg := segmentParser(wild)
	slash := token.TakeExact("/")
	more := token.ZeroOrMore(func(c *token.Cursor) (segment, bool) {
		if _, ok := slash(c); !ok {
			return segment{}, false
		}
		return seg(c)
	})
	return func(c *token.Cursor) ([]segment, bool) {
		first, ok := seg(c)
		if !ok {
			return nil, false
		}
		rest, _ := more(c)
		return append([]segment{first}, rest...), true
	}
}

func segmentParser(wild bool) token.Parser[segment] {
	name := token.TakeWhile1(func(c byte) bool {
		return IsNameByte(c) || (wild && c == '*')
	})
	index := token.OneOf(
		token.Between(token.TakeExact("["), token.TakeExact("]"), token.TakeWhile(isDigit)),
		token.TakeExact(""),
	)
	return func(c *token.Cursor) (segment, bool) {
		n, ok := name(c)
		if !ok {
			return segment{}, false
		}
		i, _ := index(c)
		return segment{name: n, index: i}, true
	}
}

// IsNameByte reports whether c may appear in a name.
func IsNameByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case isDigit(c), c == '_':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
