package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	OneFormat Format = iota
	RCFormat
)

var (
	ErrBadFormat      = errors.New("bad format")
	ErrNotImplemented = errors.New("not implemented")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"o":     OneFormat,
		"one":   OneFormat,
		"r":     RCFormat,
		"rc":    RCFormat,
		"shell": RCFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case OneFormat:
		return []byte("one"), nil
	case RCFormat:
		return []byte("rc"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsOne() bool { return f == OneFormat }
func (f Format) IsRC() bool  { return f == RCFormat }

// Valid reports whether f names a known dialect.
func (f Format) Valid() bool {
	switch f {
	case OneFormat, RCFormat:
		return true
	default:
		return false
	}
}

// HasVectors reports whether the dialect has bracketed vectors, and so
// accepts two segment paths.
func (f Format) HasVectors() bool {
	return f == OneFormat
}

// MaxDepth returns the number of path segments the dialect accepts.
func (f Format) MaxDepth() int {
	if f.HasVectors() {
		return 2
	}
	return 1
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{OneFormat, RCFormat}
}

// Detect guesses the dialect of a file from its name. Shell style names
// (".env", ".sh", "*rc", "environment") are RCFormat; everything else is
// OneFormat. The second result reports whether the name was recognized.
func Detect(name string) (Format, bool) {
	base := strings.ToLower(filepath.Base(name))
	switch ext := filepath.Ext(base); ext {
	case ".env", ".sh", ".bash", ".rc":
		return RCFormat, true
	case ".conf", ".one", ".tmpl":
		return OneFormat, true
	}
	switch {
	case base == "environment", base == ".env", strings.HasPrefix(base, ".env."):
		return RCFormat, true
	case strings.HasSuffix(base, "rc"):
		return RCFormat, true
	}
	return OneFormat, false
}
