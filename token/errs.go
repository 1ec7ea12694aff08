package token

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// snippetLen is the number of bytes of unconsumed input quoted in a
// ParseErr, cut short at the first newline.
const snippetLen = 16

// ParseErr reports input that a grammar could not consume.
type ParseErr struct {
	Err     error
	Pos     Pos
	Snippet string
}

func newParseErr(c *Cursor) *ParseErr {
	rest := c.Rest()
	rest = rest[:min(len(rest), snippetLen)]
	if i := bytes.IndexByte(rest, '\n'); i != -1 {
		rest = rest[:i]
	}
	return &ParseErr{
		Err:     ErrParse,
		Pos:     *c.Pos(),
		Snippet: string(rest),
	}
}

// Line returns the 1-based line at which parsing stopped.
func (e *ParseErr) Line() int {
	return e.Pos.Line() + 1
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s: line %d, at '%s..'", e.Err.Error(), e.Line(), e.Snippet)
}
