package parser

import (
	"io"

	"github.com/pkg/errors"
)

// Normalizer repairs markup so that it has one html root wrapping exactly one
// head and one body, with an optional doctype in front. Everything else in
// the input is kept byte for byte.
type Normalizer struct {
	config   Config
	document *Document
}

// NewNormalizer creates a Normalizer. Before LoadHTML is called SaveHTML
// returns the empty document.
func NewNormalizer(config Config) *Normalizer {
	return &Normalizer{
		config:   config,
		document: NewDocument(),
	}
}

// LoadHTML parses html into a fresh document, replacing anything loaded
// before. It accepts any string.
func (n *Normalizer) LoadHTML(html string) {
	n.document = NewParser(html, n.config).Start()
}

// SaveHTML serializes the loaded document. It can be called any number of
// times.
func (n *Normalizer) SaveHTML() string {
	return n.document.String()
}

// Document returns the loaded document.
func (n *Normalizer) Document() *Document {
	return n.document
}

// Normalize is LoadHTML followed by SaveHTML with the default config.
func Normalize(html string) string {
	n := NewNormalizer(Config{})
	n.LoadHTML(html)
	return n.SaveHTML()
}

// NormalizeReader reads all of r, normalizes it and writes the result to w.
func NormalizeReader(r io.Reader, w io.Writer, config Config) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading html")
	}

	n := NewNormalizer(config)
	n.LoadHTML(string(in))
	if _, err := io.WriteString(w, n.SaveHTML()); err != nil {
		return errors.Wrap(err, "writing normalized html")
	}

	return nil
}
