package parse

import (
	"github.com/signadot/lineconf/token"
)

// The shell dialect.

var (
	rcPrefix = token.OneOf(
		token.Seq(blank, token.TakeExact("export"), blank1),
		blank,
	)
	rcValue = token.OneOf(
		quoted('\'', false),
		quoted('"', true),
		bare("#"),
		blank,
	)
	rcPair = pair(rcPrefix, token.TakeExact("="), rcValue, suffix)

	rcDoc = sequence(token.OneOf(rcPair, comment, literalEOL))
)
