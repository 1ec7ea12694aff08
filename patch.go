package lineconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/lineconf/debug"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyJSONPatch applies an RFC 6902 patch. Operation paths are JSON
// pointers whose tokens form a path, so "/S[2]/D" addresses "S[2]/D".
//
//   - add puts the value
//   - replace puts the value over an existing entry
//   - remove drops existing entries
//   - test requires the path to select one entry with the given raw value
//
// Values are raw values: a JSON string gives its content, with any quotes
// it holds, and other JSON values give their literal text. The document is
// only changed if every operation succeeds.
func (doc *Document) ApplyJSONPatch(d []byte) error {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return err
	}
	if _, err := doc.Parse(); err != nil {
		return err
	}
	work := doc.Clone()
	for i, op := range ops {
		if err := work.applyOp(op); err != nil {
			return fmt.Errorf("patch operation %d: %w", i, err)
		}
	}
	doc.root = work.root
	return nil
}

func (doc *Document) applyOp(op jsonpatch.Operation) error {
	kind, err := rawString(op["op"])
	if err != nil {
		return err
	}
	ptr, err := rawString(op["path"])
	if err != nil {
		return err
	}
	path := pointerPath(ptr)
	if debug.Patch() {
		debug.Logf("patch %s %s", kind, path)
	}
	switch kind {
	case "add":
		v, err := rawValue(op["value"])
		if err != nil {
			return err
		}
		return doc.Put(path, v)
	case "replace":
		v, err := rawValue(op["value"])
		if err != nil {
			return err
		}
		hits, err := doc.Find(path)
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			return fmt.Errorf("%w: nothing to replace at %s", ErrEmptyMatch, path)
		}
		return doc.Put(path, v)
	case "remove":
		n, err := doc.Drop(path)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: nothing to remove at %s", ErrEmptyMatch, path)
		}
		return nil
	case "test":
		v, err := rawValue(op["value"])
		if err != nil {
			return err
		}
		got, err := doc.Get(path)
		if err != nil {
			return err
		}
		if !slices.Equal(got, []string{v}) {
			return fmt.Errorf("%w: %s is %q, not %q", ErrPatchTest, path, got, v)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOp, kind)
	}
}

// pointerPath turns a JSON pointer into a path.
func pointerPath(ptr string) string {
	toks := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	for i, tok := range toks {
		tok = strings.ReplaceAll(tok, "~1", "/")
		toks[i] = strings.ReplaceAll(tok, "~0", "~")
	}
	return strings.Join(toks, "/")
}

func rawString(m *json.RawMessage) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%w: missing field", ErrUnsupportedOp)
	}
	var s string
	if err := json.Unmarshal(*m, &s); err != nil {
		return "", err
	}
	return s, nil
}

func rawValue(m *json.RawMessage) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%w: missing value", ErrUnsupportedOp)
	}
	d := bytes.TrimSpace(*m)
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	if len(d) > 0 && (d[0] == '{' || d[0] == '[') {
		return "", fmt.Errorf("%w: value must be a scalar, got %s", ErrInvalidValue, d)
	}
	return string(d), nil
}
