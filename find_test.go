package lineconf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lineconf/format"
)

type matchTest struct {
	input string
	path  string
	value *string
	match []string
	get   []string
}

func strPtr(s string) *string {
	return &s
}

const vectors = "A = 1\nS = [D = 2]\nS = [D = 3, D = 4]\n"

var oneMatchTests = []matchTest{
	{input: "A = 1\nS = 2\nD = 3\n", path: "S", match: []string{"S"}, get: []string{"2"}},
	{input: "A = 1\nS = 2\nS = 2\nD = 3\n", path: "S", match: []string{"S[1]", "S[2]"}, get: []string{"2", "2"}},
	{input: "A = 1\nS = [D = 2]\nS = [D = 3]\n", path: "S", match: []string{}, get: []string{}},
	{input: "A = 1\nS = [D = 2]\nS = [D = 3]\n", path: "S/D", match: []string{"S[1]/D", "S[2]/D"}, get: []string{"2", "3"}},
	{input: vectors, path: "S[2]/D", match: []string{"S[2]/D[1]", "S[2]/D[2]"}, get: []string{"3", "4"}},
	{input: vectors, path: "S[2]/D[2]", match: []string{"S[2]/D[2]"}, get: []string{"4"}},
	{input: vectors, path: "*/D[2]", match: []string{"S[2]/D[2]"}, get: []string{"4"}},
	{input: vectors, path: "*", match: []string{"A"}, get: []string{"1"}},
	{input: vectors, path: "*/*", match: []string{"S[1]/D", "S[2]/D[1]", "S[2]/D[2]"}, get: []string{"2", "3", "4"}},
	{input: vectors, path: "*[2]/*", match: []string{"S[2]/D[1]", "S[2]/D[2]"}, get: []string{"3", "4"}},
	{input: vectors, path: "*/*[2]", match: []string{"S[2]/D[2]"}, get: []string{"4"}},
	{input: vectors, path: "*[2]/*[1]", match: []string{"S[2]/D[1]"}, get: []string{"3"}},
	{input: "A = 1\nS = 2\nS = 3\n", path: "*", match: []string{"A", "S[1]", "S[2]"}, get: []string{"1", "2", "3"}},
	{input: "A = 1\nS = 2\nS = 3\n", path: "A[0]", match: []string{}, get: []string{}},
	{input: "A = 1\nS = 2\nS = 3\nD = 4\nD = 5\n", path: "S[0]", match: []string{"S[1]", "S[2]"}, get: []string{"2", "3"}},
	{input: "A = 1\nS = 2\nS = 3\nD = 4\nD = 5\n", path: "*[0]", match: []string{"S[1]", "S[2]", "D[1]", "D[2]"}, get: []string{"2", "3", "4", "5"}},
	{input: "A = 1\nS = 2\nS = 3\nD = 4\nD = 5\n", path: "*[0]", value: strPtr("3"), match: []string{"S[2]"}, get: []string{"2", "3", "4", "5"}},
	{input: "LOG = [\n  SYSTEM = \"file\",\n  DEBUG_LEVEL = 3\n]\n", path: "LOG/SYSTEM", match: []string{"LOG/SYSTEM"}, get: []string{`"file"`}},
	{input: "MONITORING_INTERVAL_HOST = 180\nMONITORING_INTERVAL_VM = 180\nPORT = 2633\n", path: "MONITORING_*", value: strPtr("180"), match: []string{"MONITORING_INTERVAL_HOST", "MONITORING_INTERVAL_VM"}, get: []string{"180", "180"}},
	{input: "A = 1\nA = 2\nA = 3\n", path: "A[4]", match: []string{}, get: []string{}},
	{input: "A = 1\nS = 2\nD = 3\nS = 4\n", path: "*", match: []string{"A", "S[1]", "D", "S[2]"}, get: []string{"1", "2", "3", "4"}},
	{input: "S = [D = 1, E = 2, D = 3]\nA = 4\nS = [E = 5]\n", path: "*/*", match: []string{"S[1]/D[1]", "S[1]/E", "S[1]/D[2]", "S[2]/E"}, get: []string{"1", "2", "3", "5"}},
	{input: "S = 1\nD = 2\nS = 3\nD = 4\n", path: "*[2]", match: []string{"S[2]", "D[2]"}, get: []string{"3", "4"}},
}

var rcMatchTests = []matchTest{
	{input: "A=1\nS=2\nD=3\n", path: "S", match: []string{"S"}, get: []string{"2"}},
	{input: "A=1\nS=2\nS=2\nD=3\n", path: "S", match: []string{"S[1]", "S[2]"}, get: []string{"2", "2"}},
	{input: "A=1\nS=2\nS=3\n", path: "*", match: []string{"A", "S[1]", "S[2]"}, get: []string{"1", "2", "3"}},
	{input: "A=1\nS=2\nS=3\n", path: "A[0]", match: []string{}, get: []string{}},
	{input: "A=1\nS=2\nS=3\nD=4\nD=5\n", path: "S[0]", match: []string{"S[1]", "S[2]"}, get: []string{"2", "3"}},
	{input: "A=1\nS=2\nS=3\nD=4\nD=5\n", path: "*[0]", match: []string{"S[1]", "S[2]", "D[1]", "D[2]"}, get: []string{"2", "3", "4", "5"}},
	{input: "A=1\nS=2\nS=3\nD=4\nD=5\n", path: "*[0]", value: strPtr("3"), match: []string{"S[2]"}, get: []string{"2", "3", "4", "5"}},
	{input: "export A='x y'\nB=\n", path: "*", match: []string{"A", "B"}, get: []string{"'x y'", ""}},
	{input: "A=1\nS=2\nD=3\nexport S=4\n", path: "*", match: []string{"A", "S[1]", "D", "S[2]"}, get: []string{"1", "2", "3", "4"}},
	{input: "S=1\nD=2\nS=3\nD=4\n", path: "*[0]", match: []string{"S[1]", "D[1]", "S[2]", "D[2]"}, get: []string{"1", "2", "3", "4"}},
}

func TestMatchAndGet(t *testing.T) {
	tests := []struct {
		format format.Format
		cases  []matchTest
	}{
		{format.OneFormat, oneMatchTests},
		{format.RCFormat, rcMatchTests},
	}
	for _, tc := range tests {
		for _, mt := range tc.cases {
			t.Run(tc.format.String()+" "+mt.path, func(t *testing.T) {
				doc := New([]byte(mt.input), WithFormat(tc.format))
				var (
					match []string
					err   error
				)
				if mt.value == nil {
					match, err = doc.Match(mt.path)
				} else {
					match, err = doc.MatchValue(mt.path, *mt.value)
				}
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(mt.match, match); diff != "" {
					t.Errorf("match %s (-want +got):\n%s", mt.path, diff)
				}
				get, err := doc.Get(mt.path)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(mt.get, get); diff != "" {
					t.Errorf("get %s (-want +got):\n%s", mt.path, diff)
				}
			})
		}
	}
}

func TestMatchedPathsResolve(t *testing.T) {
	doc := New([]byte("A = 1\nS = [D = 2]\nS = [D = 3, D = 4, E = 5]\nA = 6\n"))
	for _, path := range []string{"*", "*/*", "S[0]/D", "*[2]/*[0]", "A"} {
		all, err := doc.Get(path)
		if err != nil {
			t.Fatal(err)
		}
		matched, err := doc.Match(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != len(matched) {
			t.Fatalf("%s: %d values for %d matches", path, len(all), len(matched))
		}
		for i, m := range matched {
			got, err := doc.Get(m)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{all[i]}, got); diff != "" {
				t.Errorf("%s: get %s (-want +got):\n%s", path, m, diff)
			}
		}
	}
}

func TestUniqueNameIndex(t *testing.T) {
	doc := New([]byte("A = 1\nS = [D = 2]\n"))
	tests := []struct {
		path string
		want []string
	}{
		{"A", []string{"1"}},
		{"A[1]", []string{"1"}},
		{"A[0]", []string{}},
		{"A[2]", []string{}},
		{"S/D", []string{"2"}},
		{"S[1]/D[1]", []string{"2"}},
		{"S[0]/D", []string{}},
	}
	for _, tc := range tests {
		got, err := doc.Get(tc.path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("get %s (-want +got):\n%s", tc.path, diff)
		}
	}
}

func TestFindHits(t *testing.T) {
	doc := New([]byte(vectors))
	got, err := doc.Find("S[2]/*")
	if err != nil {
		t.Fatal(err)
	}
	want := []Hit{
		{Path: "S[2]/D[1]", Vector: "S", VectorIndex: 2, Name: "D", Index: 1, Value: "3"},
		{Path: "S[2]/D[2]", Vector: "S", VectorIndex: 2, Name: "D", Index: 2, Value: "4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWhere(t *testing.T) {
	doc := New([]byte("LOG = [\n  SYSTEM = \"file\",\n  DEBUG_LEVEL = 3\n]\nPORT = 2633\nMONITORING_THREADS = 50\n"))
	where, err := Where(`unquoted == "file" || num(value) > 10`)
	if err != nil {
		t.Fatal(err)
	}
	hits, err := doc.FindFunc("*", where)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := paths(hits, nil)
	if diff := cmp.Diff([]string{"PORT", "MONITORING_THREADS"}, got); diff != "" {
		t.Errorf("top level (-want +got):\n%s", diff)
	}
	hits, err = doc.FindFunc("*/*", where)
	if err != nil {
		t.Fatal(err)
	}
	got, _ = paths(hits, nil)
	if diff := cmp.Diff([]string{"LOG/SYSTEM"}, got); diff != "" {
		t.Errorf("nested (-want +got):\n%s", diff)
	}
}

func TestQueryErrors(t *testing.T) {
	tests := []struct {
		format format.Format
		input  string
		path   string
		want   error
	}{
		{format.OneFormat, "A = 1\n", "A[", ErrInvalidPath},
		{format.OneFormat, "A = 1\n", "A/B/C", ErrInvalidPath},
		{format.OneFormat, "A = 1\n", "A[1]x", ErrInvalidPath},
		{format.RCFormat, "A=1\n", "A/B", ErrInvalidPath},
		{format.OneFormat, "A = [\n", "A", ErrParse},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			_, err := New([]byte(tc.input), WithFormat(tc.format)).Get(tc.path)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
