// Package eval compiles boolean expressions used to select entries of a
// document.
//
// Expressions are written in the expr language
// (https://expr-lang.org) and see one entry at a time through these
// variables:
//
//   - path: the path of the entry, such as "S[2]/D[1]"
//   - name: the entry name, such as "D"
//   - index: the occurrence index of the entry, 0 when its name is unique
//   - vector: the name of the enclosing vector, "" at the top level
//   - value: the raw value, with quotes
//   - unquoted: the value without its quotes
//
// Besides the expr builtins, the functions getenv(name), unquote(s),
// glob(pattern, s) and num(s) are available.
//
// # Usage
//
//	p, err := eval.Compile(`name matches "^MONITORING_" && num(value) > 60`)
//	ok, err := p.Match(env)
package eval
