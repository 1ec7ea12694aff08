package parse

import (
	"github.com/signadot/lineconf/format"
)

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseOne() ParseOption {
	return ParseFormat(format.OneFormat)
}
func ParseRC() ParseOption {
	return ParseFormat(format.RCFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
