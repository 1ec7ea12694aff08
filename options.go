package lineconf

import "github.com/signadot/lineconf/format"

type docOpts struct {
	format format.Format
}

type Option func(*docOpts)

// WithFormat sets the dialect of a document. The default is
// format.OneFormat.
func WithFormat(f format.Format) Option {
	return func(o *docOpts) { o.format = f }
}
