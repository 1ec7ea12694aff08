package eval

import (
	"testing"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"file"`, "file"},
		{`'2 2'`, "2 2"},
		{`"open\"nebula"`, `open"nebula`},
		{`"a\\b"`, `a\b`},
		{`123`, "123"},
		{`"`, `"`},
		{`"x'`, `"x'`},
		{``, ``},
	}
	for _, tc := range tests {
		if got := Unquote(tc.in); got != tc.want {
			t.Errorf("Unquote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPredicate(t *testing.T) {
	env := NewEnv("LOG/DEBUG_LEVEL", "LOG", "DEBUG_LEVEL", 0, "3")
	tests := []struct {
		src  string
		want bool
	}{
		{`name == "DEBUG_LEVEL"`, true},
		{`vector == "LOG" && index == 0`, true},
		{`num(value) > 2`, true},
		{`num(value) > 3`, false},
		{`glob("DEBUG_*", name)`, true},
		{`path startsWith "LOG/"`, true},
		{`unquoted == "3"`, true},
		{`getenv("LINECONF_EVAL_TEST_UNSET") == ""`, true},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			p, err := Compile(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.Match(env)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`name`, `index + 1`, `nosuch == 1`, `name ==`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("%q compiled", src)
		}
	}
}

func TestUnquotedValue(t *testing.T) {
	p, err := Compile(`unquoted == "file" && value == "\"file\""`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := p.Match(NewEnv("LOG/SYSTEM", "LOG", "SYSTEM", 0, `"file"`))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected match")
	}
}
