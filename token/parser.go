package token

import (
	"bytes"
)

// A Parser consumes input from a Cursor. It returns false when the input
// does not match, in which case the cursor is left where it was.
type Parser[T any] func(c *Cursor) (T, bool)

// backtrack runs p as one scope: if p fails, the cursor is restored to
// the position it had before p ran.
func backtrack[T any](c *Cursor, p Parser[T]) (T, bool) {
	before := c.i
	v, ok := p(c)
	if !ok {
		c.i = before
		var zero T
		return zero, false
	}
	return v, true
}

// Peek returns the next n bytes without consuming them.
func Peek(n int) Parser[string] {
	return func(c *Cursor) (string, bool) {
		if c.Len() < n {
			return "", false
		}
		return string(c.Rest()[:n]), true
	}
}

// Take consumes the next n bytes.
func Take(n int) Parser[string] {
	peek := Peek(n)
	return func(c *Cursor) (string, bool) {
		s, ok := peek(c)
		if !ok {
			return "", false
		}
		c.consume(n)
		return s, true
	}
}

// TakeExact consumes lit, and only lit.
func TakeExact(lit string) Parser[string] {
	return func(c *Cursor) (string, bool) {
		if !bytes.HasPrefix(c.Rest(), []byte(lit)) {
			return "", false
		}
		c.consume(len(lit))
		return lit, true
	}
}

// TakeWhile greedily consumes bytes satisfying pred. It never fails; the
// result may be empty.
func TakeWhile(pred func(byte) bool) Parser[string] {
	return func(c *Cursor) (string, bool) {
		rest := c.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		c.consume(n)
		return string(rest[:n]), true
	}
}

// TakeWhile1 is TakeWhile but fails unless at least one byte satisfies
// pred.
func TakeWhile1(pred func(byte) bool) Parser[string] {
	run := TakeWhile(pred)
	return func(c *Cursor) (string, bool) {
		rest := c.Rest()
		if len(rest) == 0 || !pred(rest[0]) {
			return Quit[string]()(c)
		}
		return run(c)
	}
}

// ZeroOrMore applies p until it fails and collects the results. The failing
// attempt is rewound, so the cursor ends after the last success. A success
// which consumes nothing also ends the repetition.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(c *Cursor) ([]T, bool) {
		var res []T
		for {
			before := c.i
			v, ok := backtrack(c, p)
			if !ok {
				return res, true
			}
			res = append(res, v)
			if c.i == before {
				return res, true
			}
		}
	}
}

// OneOf returns the result of the first alternative that succeeds.
func OneOf[T any](ps ...Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool) {
		for _, p := range ps {
			if v, ok := backtrack(c, p); ok {
				return v, true
			}
		}
		return Quit[T]()(c)
	}
}

// Between runs open, inner and close as a single scope and returns the
// result of inner. If close fails, everything inner consumed is rewound.
func Between[T any](open, close Parser[string], inner Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool) {
		return backtrack(c, func(c *Cursor) (T, bool) {
			var zero T
			if _, ok := open(c); !ok {
				return zero, false
			}
			v, ok := inner(c)
			if !ok {
				return zero, false
			}
			if _, ok := close(c); !ok {
				return zero, false
			}
			return v, true
		})
	}
}

// Seq runs each parser in turn and concatenates their results.
func Seq(ps ...Parser[string]) Parser[string] {
	return func(c *Cursor) (string, bool) {
		return backtrack(c, func(c *Cursor) (string, bool) {
			var buf []byte
			for _, p := range ps {
				s, ok := p(c)
				if !ok {
					return "", false
				}
				buf = append(buf, s...)
			}
			return string(buf), true
		})
	}
}

// Followed runs p then q and returns the result of p alone. The text q
// consumes is discarded.
func Followed[T any](p Parser[T], q Parser[string]) Parser[T] {
	return func(c *Cursor) (T, bool) {
		return backtrack(c, func(c *Cursor) (T, bool) {
			var zero T
			v, ok := p(c)
			if !ok {
				return zero, false
			}
			if _, ok := q(c); !ok {
				return zero, false
			}
			return v, true
		})
	}
}

// Map converts the result of p with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c *Cursor) (U, bool) {
		v, ok := p(c)
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	}
}

// Quit always fails.
func Quit[T any]() Parser[T] {
	return func(*Cursor) (T, bool) {
		var zero T
		return zero, false
	}
}

// Run applies p to d. It fails unless p succeeds and consumes all of d.
func Run[T any](p Parser[T], d []byte) (T, error) {
	c := NewCursor(d)
	v, ok := backtrack(c, p)
	if !ok || !c.AtEnd() {
		var zero T
		return zero, newParseErr(c)
	}
	return v, nil
}
