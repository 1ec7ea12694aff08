// Package lineconf reads and edits line oriented configuration files
// without disturbing their formatting.
//
// A [Document] holds the lossless tree of one file. Entries are addressed
// with paths (see package ypath):
//
//	doc := lineconf.New(data)
//	vals, err := doc.Get("LOG/DEBUG_LEVEL")
//	err = doc.Put("VM_MAD[2]/ARGUMENTS", `"-t 15 -r 0 kvm"`)
//	err = doc.Drop("IM_MAD/*")
//	out, err := doc.Render()
//
// Queries and edits go through an index of the tree which is rebuilt
// for every call, so edits are always seen by the next query.
//
// # Occurrence Indices
//
// When several entries share a name at the same level, each one gets a
// 1-based occurrence index and paths must say which one they mean:
//
//   - "S" selects every S for queries, and is ambiguous for [Document.Put]
//   - "S[2]" selects the second S
//   - "S[0]" selects every S, and appends a new S for [Document.Put]
//
// A name that occurs once has no index. It is selected by "S" and "S[1]"
// and by nothing else.
//
// # Thread Safety
//
// A Document is not safe for concurrent use.
package lineconf
