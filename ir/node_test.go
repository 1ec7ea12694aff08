package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromText(t *testing.T) {
	if got := FromText(", # c\n"); got.Type != CommentType {
		t.Errorf("got %s, want %s", got.Type, CommentType)
	}
	if got := FromText(" \n"); got.Type != LiteralType {
		t.Errorf("got %s, want %s", got.Type, LiteralType)
	}
}

func TestRemoveByIdentity(t *testing.T) {
	a := NewPair("", "A", "=", "1", Literal("\n"))
	b := NewPair("", "A", "=", "1", Literal("\n"))
	seq := NewSequence(a, b)
	if seq.IndexOf(b) != 1 {
		t.Fatalf("IndexOf(b) = %d", seq.IndexOf(b))
	}
	if !seq.Remove(b) {
		t.Fatal("b not removed")
	}
	if len(seq.Values) != 1 || seq.Values[0] != a {
		t.Errorf("wrong node removed")
	}
	if seq.Remove(b) {
		t.Error("b removed twice")
	}
}

func TestPairs(t *testing.T) {
	p := NewPair(" ", "D", " = ", "2", Literal(""))
	vec := NewVector("", "S", " = ", NewSequence(Literal("\n"), p, Comment("# c\n")), Literal("\n"))
	if diff := cmp.Diff([]*Node{p}, vec.Pairs()); diff != "" {
		t.Errorf("vector pairs (-want +got):\n%s", diff)
	}
	doc := NewSequence(NewPair("", "A", "=", "1", nil), vec)
	if n := len(doc.Pairs()); n != 1 {
		t.Errorf("got %d top level pairs, want 1", n)
	}
}

func TestClone(t *testing.T) {
	vec := NewVector("", "S", " = ", NewSequence(NewPair("", "D", " = ", "2", Literal(""))), Literal("\n"))
	doc := NewSequence(NewPair("", "A", " = ", "1", Comment(" # c\n")), vec)
	c := doc.Clone()
	if diff := cmp.Diff(doc, c); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}
	c.Values[1].Body.Values[0].Value = "3"
	c.Values[0].Suffix.Text = ""
	if vec.Body.Values[0].Value != "2" {
		t.Error("clone shares vector body")
	}
	if doc.Values[0].Suffix.Text != " # c\n" {
		t.Error("clone shares suffix")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("got %s, want %s", got, typ)
		}
	}
}
