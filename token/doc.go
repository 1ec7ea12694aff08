// Package token provides the backtracking parsing engine used by the
// dialect grammars.
//
// A [Parser] consumes bytes from a [Cursor] and reports success with a
// boolean. A parser that fails leaves the cursor where it found it, so
// alternatives ([OneOf]) and repetitions ([ZeroOrMore]) can be tried
// without any global state to undo.
//
// Grammars are built by composing the primitives:
//
//	blank := token.TakeWhile(isBlank)
//	sep := token.Seq(blank, token.TakeExact("="), blank)
//	key := token.TakeWhile1(isIdent)
//
// [Run] applies a parser to a whole input. Any input left over after the
// parser returns is reported as a [ParseErr] carrying the line number and
// a short snippet of the text that could not be consumed.
package token
