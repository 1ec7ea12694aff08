// Package parse parses configuration text into lossless IR trees.
//
// # Usage
//
//	// Parse an OpenNebula style file
//	node, err := parse.Parse(data)
//
//	// Parse a shell style file
//	node, err := parse.Parse(data, parse.ParseRC())
//
// The result is always an [ir.SequenceType] node. Every byte of the input
// is kept in the tree, so encoding an unmodified tree gives back the input.
//
// # Dialects
//
// The OpenNebula dialect ([format.OneFormat]) has assignments
//
//	NAME = value
//	NAME = "quoted \"value\""
//
// and bracketed vectors of assignments
//
//	NAME = [ A = 1, B = "two" ]
//
// The shell dialect ([format.RCFormat]) has assignments with an optional
// export keyword and no blanks around '='
//
//	export NAME='value'
//
// Both dialects have '#' comments running to the end of the line.
//
// # Related Packages
//
//   - github.com/signadot/lineconf/ir - IR representation
//   - github.com/signadot/lineconf/encode - Encode IR to text
//   - github.com/signadot/lineconf/token - Parser combinators
package parse
