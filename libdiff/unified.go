package libdiff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff of before and after, with name used for
// both file headers. It is empty when the texts are equal.
func Unified(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}
