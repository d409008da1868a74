package parser

import (
	"strings"
)

const (
	defaultHTMLStart = "<html>"
	defaultHTMLEnd   = "</html>"
	defaultHeadStart = "<head>"
	defaultHeadEnd   = "</head>"
	defaultBodyStart = "<body>"
	defaultBodyEnd   = "</body>"
)

type sectionKey uint

const (
	htmlSection sectionKey = iota
	headSection
	bodySection
)

func (k sectionKey) String() string {
	switch k {
	case htmlSection:
		return "html"
	case headSection:
		return "head"
	default:
		return "body"
	}
}

// Section is one of the root elements of a Document: its start tag, its end
// tag and, for head and body, the markup collected between them.
type Section struct {
	Start   string
	End     string
	Content []string
}

func (s *Section) copy() Section {
	c := Section{Start: s.Start, End: s.End}
	if len(s.Content) > 0 {
		c.Content = append([]string(nil), s.Content...)
	}
	return c
}

// Document is the fixed shape every normalized page ends up with: an
// optional doctype, then html wrapping exactly one head and one body.
type Document struct {
	docType string
	html    Section
	head    Section
	body    Section
}

// NewDocument returns a document holding only the default root tags.
func NewDocument() *Document {
	return &Document{
		html: Section{Start: defaultHTMLStart, End: defaultHTMLEnd},
		head: Section{Start: defaultHeadStart, End: defaultHeadEnd},
		body: Section{Start: defaultBodyStart, End: defaultBodyEnd},
	}
}

// DocType returns the retained doctype markup, or "" when there is none.
func (d *Document) DocType() string { return d.docType }

// HTML returns a copy of the html section. It never has content.
func (d *Document) HTML() Section { return d.html.copy() }

// Head returns a copy of the head section.
func (d *Document) Head() Section { return d.head.copy() }

// Body returns a copy of the body section.
func (d *Document) Body() Section { return d.body.copy() }

func (d *Document) section(k sectionKey) *Section {
	switch k {
	case htmlSection:
		return &d.html
	case headSection:
		return &d.head
	default:
		return &d.body
	}
}

func (d *Document) len() int {
	n := len(d.docType) + len(d.html.Start) + len(d.html.End)
	for _, s := range []*Section{&d.head, &d.body} {
		n += len(s.Start) + len(s.End)
		for _, c := range s.Content {
			n += len(c)
		}
	}
	return n
}

// String serializes the document: doctype, html start, head, body, html end.
// It does not modify the document.
func (d *Document) String() string {
	var b strings.Builder
	b.Grow(d.len())

	b.WriteString(d.docType)
	b.WriteString(d.html.Start)

	b.WriteString(d.head.Start)
	for _, node := range d.head.Content {
		b.WriteString(node)
	}
	b.WriteString(d.head.End)

	b.WriteString(d.body.Start)
	for _, node := range d.body.Content {
		b.WriteString(node)
	}
	b.WriteString(d.body.End)

	b.WriteString(d.html.End)
	return b.String()
}
