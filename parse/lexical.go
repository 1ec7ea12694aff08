package parse

import (
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/ir/ypath"
	"github.com/signadot/lineconf/token"
)

// Rules shared by both dialects.

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

var (
	blank     = token.TakeWhile(isBlank)
	blank1    = token.TakeWhile1(isBlank)
	eol       = token.TakeExact("\n")
	blankEOL  = token.Seq(blank, eol)
	attribute = token.TakeWhile1(ypath.IsNameByte)

	// comment runs from '#' to the end of the line, including the newline
	// unless it is the last line of the input.
	comment = token.Map(token.Seq(
		blank,
		token.TakeExact("#"),
		token.TakeWhile(func(c byte) bool { return c != '\n' }),
		token.OneOf(eol, atEnd),
	), ir.Comment)

	literalEOL   = token.Map(blankEOL, ir.Literal)
	literalBlank = token.Map(blank, ir.Literal)

	// suffix ends a pair: a trailing comment, a line end or blanks.
	suffix = token.OneOf(comment, literalEOL, literalBlank)
)

var atEnd token.Parser[string] = func(c *token.Cursor) (string, bool) {
	return "", c.AtEnd()
}

// quoted parses text between q and q with the quotes included in the
// result. With escapes, a backslash makes the following byte part of the
// string, whatever it is.
func quoted(q byte, escapes bool) token.Parser[string] {
	open := token.TakeExact(string(q))
	return func(c *token.Cursor) (string, bool) {
		escaped := false
		body := token.TakeWhile(func(b byte) bool {
			switch {
			case !escapes:
				return b != q
			case escaped:
				escaped = false
				return true
			case b == '\\':
				escaped = true
				return true
			default:
				return b != q
			}
		})
		return token.Map(token.Between(open, open, body), func(s string) string {
			return string(q) + s + string(q)
		})(c)
	}
}

// bare parses a non empty run of bytes that are neither blanks nor
// delimiters.
func bare(delims string) token.Parser[string] {
	var stop [256]bool
	for i := range len(delims) {
		stop[delims[i]] = true
	}
	return token.TakeWhile1(func(c byte) bool {
		return !stop[c] && !isSpace(c)
	})
}

// pair assembles a Pair node from its five parts.
func pair(prefix, sep, value token.Parser[string], sfx token.Parser[*ir.Node]) token.Parser[*ir.Node] {
	return func(c *token.Cursor) (*ir.Node, bool) {
		p, ok := prefix(c)
		if !ok {
			return nil, false
		}
		k, ok := attribute(c)
		if !ok {
			return nil, false
		}
		s, ok := sep(c)
		if !ok {
			return nil, false
		}
		v, ok := value(c)
		if !ok {
			return nil, false
		}
		x, ok := sfx(c)
		if !ok {
			return nil, false
		}
		return ir.NewPair(p, k, s, v, x), true
	}
}

func sequence(p token.Parser[*ir.Node]) token.Parser[*ir.Node] {
	return token.Map(token.ZeroOrMore(p), func(vs []*ir.Node) *ir.Node {
		return ir.NewSequence(vs...)
	})
}
