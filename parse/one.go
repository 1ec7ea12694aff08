package parse

import (
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/token"
)

// The OpenNebula dialect.

var (
	oneQuoted = quoted('"', true)
	oneBare   = bare(`][",#`)
	oneValue  = token.OneOf(oneQuoted, oneBare)
	oneSep    = token.Seq(blank, token.TakeExact("="), blank)

	// blankComma is a comma and the blanks before it. It stays in the
	// suffix of the vector pair it follows.
	blankComma = token.Seq(blank, token.TakeExact(","))

	onePair = pair(blank, oneSep, oneValue, suffix)

	itemSuffix = token.OneOf(
		token.Map(token.Seq(blankComma, token.Map(comment, text)), ir.FromText),
		token.Map(token.Seq(blankComma, blankEOL), ir.Literal),
		token.Map(blankComma, ir.Literal),
		comment,
		literalEOL,
		literalBlank,
	)

	oneItem = pair(blank, oneSep, oneValue, itemSuffix)

	oneBody = token.Between(
		token.TakeExact("["),
		token.TakeExact("]"),
		sequence(token.OneOf(oneItem, comment, literalEOL)),
	)
)

func text(y *ir.Node) string {
	return y.Text
}

func oneVector(c *token.Cursor) (*ir.Node, bool) {
	p, ok := blank(c)
	if !ok {
		return nil, false
	}
	k, ok := attribute(c)
	if !ok {
		return nil, false
	}
	s, ok := oneSep(c)
	if !ok {
		return nil, false
	}
	body, ok := oneBody(c)
	if !ok {
		return nil, false
	}
	x, ok := suffix(c)
	if !ok {
		return nil, false
	}
	return ir.NewVector(p, k, s, body, x), true
}

var oneDoc = sequence(token.OneOf(onePair, oneVector, comment, literalEOL))
