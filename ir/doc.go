// Package ir provides the lossless tree produced by the dialect grammars.
//
// # Overview
//
// A parsed document is a tree of [Node] values. Every byte of the source
// text is held by exactly one node, either as formatting text (blanks,
// newlines, separators, comments) or as a semantic fragment (a key or a
// value). Rendering a tree is the concatenation of those fragments in
// order, so a tree that has not been modified renders back to the bytes
// it was parsed from.
//
// # Node Types
//
// Node is a tagged union; the Type field says which fields are in use.
//
//   - LiteralType: formatting text with no key, held in Text
//   - CommentType: like LiteralType, but the text contains a '#' comment
//   - PairType: one assignment, the 5-tuple Prefix, Key, Sep, Value, Suffix
//   - VectorType: a bracketed list of pairs under one key, the 5-tuple
//     Prefix, Key, Sep, Body, Suffix
//   - SequenceType: an ordered list of nodes in Values; the order of Values
//     is the render order
//
// The Suffix of a pair or a vector is itself a LiteralType or CommentType
// node so that code inferring formatting can tell trailing comments from
// plain line ends.
//
// # Identity
//
// Nodes are compared by identity when they are located or removed
// ([Node.IndexOf], [Node.Remove]). Two pairs with the same text are still
// different entries of a document.
//
// # Thread Safety
//
// Node structures are not thread-safe. Callers sharing a tree between
// goroutines must serialize access themselves.
package ir
