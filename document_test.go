package lineconf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lineconf/encode"
	"github.com/signadot/lineconf/format"
	"github.com/signadot/lineconf/ir"
)

func TestScenarios(t *testing.T) {
	t.Run("nested match", func(t *testing.T) {
		doc := New([]byte(vectors))
		match, err := doc.Match("S[2]/D[2]")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"S[2]/D[2]"}, match); diff != "" {
			t.Error(diff)
		}
		get, err := doc.Get("S[2]/D[2]")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"4"}, get); diff != "" {
			t.Error(diff)
		}
		match, err = doc.Match("*/D[2]")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"S[2]/D[2]"}, match); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("put into vector", func(t *testing.T) {
		doc := New([]byte("A = 1\nS = [ D = 2 ]\n"))
		if err := doc.Put("S/D[0]", "3"); err != nil {
			t.Fatal(err)
		}
		got, err := doc.Render()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("A = 1\nS = [ D = 2, D = 3 ]\n", got); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("drop first", func(t *testing.T) {
		doc := New([]byte("A=1\nS=2\nD=3\nexport S=4\n"), WithFormat(format.RCFormat))
		if _, err := doc.Drop("S[1]"); err != nil {
			t.Fatal(err)
		}
		got, err := doc.Render()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("A=1\nD=3\nexport S=4\n", got); diff != "" {
			t.Error(diff)
		}
	})
}

func TestParseOnce(t *testing.T) {
	doc := New([]byte("A = 1\n"))
	first, err := doc.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Put("A", "2"); err != nil {
		t.Fatal(err)
	}
	second, err := doc.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("Parse returned a new tree")
	}
	if got, _ := doc.Render(); got != "A = 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestParseDocumentError(t *testing.T) {
	_, err := ParseDocument([]byte("A = 1\nB = [\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v, want %v", err, ErrParse)
	}
	want := "parse error: line 2, at 'B = [..'"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestClone(t *testing.T) {
	doc := New([]byte(vectors))
	c := doc.Clone()
	if err := c.Put("S[1]/D", "9"); err != nil {
		t.Fatal(err)
	}
	got, _ := doc.Render()
	if got != vectors {
		t.Errorf("clone edit leaked: %q", got)
	}
	got, _ = c.Render()
	if got != "A = 1\nS = [D = 9]\nS = [D = 3, D = 4]\n" {
		t.Errorf("clone got %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	doc := New([]byte("A = 1\n"))
	mark := func(s string, _ ...any) string { return "<" + s + ">" }
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.PairType, Attr: encode.ValueColor}: mark,
		},
	}
	buf := bytes.NewBuffer(nil)
	if err := doc.Encode(buf, encode.EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "A = <1>\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderInvalidTree(t *testing.T) {
	doc := New([]byte("A=1\n"), WithFormat(format.RCFormat))
	root, err := doc.Parse()
	if err != nil {
		t.Fatal(err)
	}
	root.Append(ir.NewVector("", "V", "=", ir.NewSequence(), nil))
	if _, err := doc.Render(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("got %v, want %v", err, ErrInvalidTree)
	}
	if _, err := doc.Get("*"); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("got %v, want %v", err, ErrInvalidTree)
	}
}
