// Package libdiff compares sequences of document entries.
//
// [Lines] reports which entries were inserted or deleted between two
// ordered lists, and [Unified] formats a unified text diff of two
// renderings of a document.
package libdiff
