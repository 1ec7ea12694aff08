// Package ypath implements the selector language used to address entries
// of a parsed document.
//
// A path has one or two segments separated by '/'. Each segment is a name
// optionally followed by a bracketed occurrence index:
//
//	A          the entry named A
//	S[2]       the second entry named S
//	S[2]/D[1]  the first D inside the second vector S
//	*/D        every D inside every vector
//
// Names consist of ASCII letters, digits and '_', plus '*' when wildcards
// are allowed ([AllowWild]). A '*' matches any run of name characters.
//
// Indices are 1-based. An index of 0 selects every occurrence, and an empty
// pair of brackets is the same as no index at all. Only dialects with
// vectors accept a second segment ([MaxDepth]).
package ypath
