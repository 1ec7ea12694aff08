package lineconf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyJSONPatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		patch string
		want  string
	}{
		{
			name:  "add",
			input: "A = 1\n",
			patch: `[{"op": "add", "path": "/S", "value": 2}]`,
			want:  "A = 1\nS = 2\n",
		},
		{
			name:  "add quoted",
			input: "A = 1\n",
			patch: `[{"op": "add", "path": "/LOG/SYSTEM", "value": "\"file\""}]`,
			want:  "A = 1\nLOG = [\n SYSTEM = \"file\" ]\n",
		},
		{
			name:  "replace nested",
			input: vectors,
			patch: `[{"op": "replace", "path": "/S[2]/D[1]", "value": "5"}]`,
			want:  "A = 1\nS = [D = 2]\nS = [D = 5, D = 4]\n",
		},
		{
			name:  "remove",
			input: vectors,
			patch: `[{"op": "remove", "path": "/S[1]/D"}]`,
			want:  "A = 1\nS = [D = 3, D = 4]\n",
		},
		{
			name:  "test then replace",
			input: "PORT = 2633\n",
			patch: `[{"op": "test", "path": "/PORT", "value": 2633}, {"op": "replace", "path": "/PORT", "value": 2634}]`,
			want:  "PORT = 2634\n",
		},
		{
			name:  "escaped pointer",
			input: "A = 1\n",
			patch: `[{"op": "add", "path": "/A~0", "value": 2}]`,
			want:  "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := New([]byte(tc.input))
			err := doc.ApplyJSONPatch([]byte(tc.patch))
			if tc.want == "" {
				if !errors.Is(err, ErrInvalidPath) {
					t.Fatalf("got %v, want %v", err, ErrInvalidPath)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got, err := doc.Render()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyJSONPatchAtomic(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		want  error
	}{
		{"failed test", `[{"op": "add", "path": "/B", "value": 2}, {"op": "test", "path": "/A", "value": 2}]`, ErrPatchTest},
		{"replace missing", `[{"op": "add", "path": "/B", "value": 2}, {"op": "replace", "path": "/C", "value": 2}]`, ErrEmptyMatch},
		{"remove missing", `[{"op": "remove", "path": "/A"}, {"op": "remove", "path": "/C"}]`, ErrEmptyMatch},
		{"move", `[{"op": "move", "from": "/A", "path": "/B"}]`, ErrUnsupportedOp},
		{"copy", `[{"op": "copy", "from": "/A", "path": "/B"}]`, ErrUnsupportedOp},
		{"object value", `[{"op": "add", "path": "/B", "value": {"x": 1}}]`, ErrInvalidValue},
		{"bad value", `[{"op": "add", "path": "/B", "value": "a b"}]`, ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := New([]byte("A = 1\n"))
			err := doc.ApplyJSONPatch([]byte(tc.patch))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			got, err := doc.Render()
			if err != nil {
				t.Fatal(err)
			}
			if got != "A = 1\n" {
				t.Errorf("failed patch changed the document to %q", got)
			}
		})
	}
}

func TestPointerPath(t *testing.T) {
	tests := map[string]string{
		"/A":         "A",
		"/S[2]/D":    "S[2]/D",
		"/x~1y":      "x/y",
		"/a~0b":      "a~b",
		"S[0]/D[1]":  "S[0]/D[1]",
		"/A~01":      "A~1",
	}
	for in, want := range tests {
		if got := pointerPath(in); got != want {
			t.Errorf("pointerPath(%q) = %q, want %q", in, got, want)
		}
	}
}
