package lineconf

import (
	"io"

	"github.com/signadot/lineconf/encode"
	"github.com/signadot/lineconf/format"
	"github.com/signadot/lineconf/ir"
	"github.com/signadot/lineconf/parse"
)

// Document is one configuration file and its tree.
type Document struct {
	src    []byte
	format format.Format
	root   *ir.Node
}

// New returns a document for d. Parsing happens on first use.
func New(d []byte, opts ...Option) *Document {
	o := &docOpts{format: format.OneFormat}
	for _, opt := range opts {
		opt(o)
	}
	return &Document{src: d, format: o.format}
}

// ParseDocument is New followed by Parse.
func ParseDocument(d []byte, opts ...Option) (*Document, error) {
	doc := New(d, opts...)
	if _, err := doc.Parse(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Format returns the dialect the document was parsed as.
func (doc *Document) Format() format.Format {
	return doc.format
}

// Parse returns the tree of the document. Only the first successful call
// parses; later calls return the same tree, including any edits made to
// it since.
func (doc *Document) Parse() (*ir.Node, error) {
	if doc.root != nil {
		return doc.root, nil
	}
	root, err := parse.Parse(doc.src, parse.ParseFormat(doc.format))
	if err != nil {
		return nil, err
	}
	doc.root = root
	return root, nil
}

// Render returns the text of the document.
func (doc *Document) Render() (string, error) {
	root, err := doc.Parse()
	if err != nil {
		return "", err
	}
	return doc.RenderNode(root)
}

// RenderNode returns the text of node in the dialect of the document.
func (doc *Document) RenderNode(node *ir.Node) (string, error) {
	return encode.EncodeString(node, encode.EncodeFormat(doc.format))
}

// Encode writes the document to w.
func (doc *Document) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	root, err := doc.Parse()
	if err != nil {
		return err
	}
	opts = append([]encode.EncodeOption{encode.EncodeFormat(doc.format)}, opts...)
	return encode.Encode(root, w, opts...)
}

// Clone returns a deep copy of the document.
func (doc *Document) Clone() *Document {
	return &Document{
		src:    doc.src,
		format: doc.format,
		root:   doc.root.Clone(),
	}
}
