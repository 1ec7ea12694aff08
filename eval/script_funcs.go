package eval

import (
	"os"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("unquote", func(params ...any) (any, error) {
			return Unquote(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("glob", func(params ...any) (any, error) {
			return doublestar.Match(params[0].(string), params[1].(string))
		},
			new(func(string, string) bool)),
		expr.Function("num", func(params ...any) (any, error) {
			return strconv.ParseFloat(strings.TrimSpace(Unquote(params[0].(string))), 64)
		},
			new(func(string) float64)),
	}
}

// Unquote strips the quotes of a single or double quoted value. Within
// double quotes a backslash escapes the following byte.
func Unquote(v string) string {
	if len(v) < 2 || v[0] != v[len(v)-1] {
		return v
	}
	switch v[0] {
	case '\'':
		return v[1 : len(v)-1]
	case '"':
	default:
		return v
	}
	body := v[1 : len(v)-1]
	if !strings.Contains(body, `\`) {
		return body
	}
	var b strings.Builder
	escaped := false
	for i := range len(body) {
		c := body[i]
		if c == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteByte(c)
	}
	return b.String()
}
