package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the variables an expression is evaluated against.
type Env map[string]any

// NewEnv returns an Env with every variable set.
func NewEnv(path, vector, name string, index int, value string) Env {
	return Env{
		"path":     path,
		"vector":   vector,
		"name":     name,
		"index":    index,
		"value":    value,
		"unquoted": Unquote(value),
	}
}

type Predicate struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must produce a boolean.
func Compile(src string) (*Predicate, error) {
	opts := append(exprOpts(),
		expr.Env(NewEnv("", "", "", 0, "")),
		expr.AsBool(),
	)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	return &Predicate{src: src, prg: prg}, nil
}

func (p *Predicate) String() string {
	return p.src
}

// Match evaluates the predicate against env.
func (p *Predicate) Match(env Env) (bool, error) {
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("could not evaluate %q: %w", p.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q gave %T, not bool", p.src, res)
	}
	return b, nil
}
