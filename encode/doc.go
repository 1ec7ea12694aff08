// Package encode renders IR trees back to configuration text.
//
// Rendering is the concatenation, in document order, of the text held by
// each node. Nothing is reformatted, so a tree produced by the parse
// package encodes to exactly the bytes it was parsed from.
//
// # Usage
//
//	// Encode an OpenNebula style tree
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode a shell style tree with terminal colors
//	err := encode.Encode(node, os.Stdout,
//		encode.EncodeFormat(format.RCFormat),
//		encode.EncodeColors(encode.NewColors()))
//
// Only the OpenNebula dialect has vectors; encoding a vector in any other
// dialect fails with [ir.ErrInvalidTree].
//
// # Related Packages
//
//   - github.com/signadot/lineconf/parse - Parse text to IR
//   - github.com/signadot/lineconf/ir - IR representation
package encode
