package parser

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// insertionMode is the section currently receiving ordinary content.
type insertionMode uint

const (
	initial insertionMode = iota
	inHead
	inBody
)

func (m insertionMode) section() sectionKey {
	if m == inHead {
		return headSection
	}
	return bodySection
}

func modeFor(k sectionKey) insertionMode {
	switch k {
	case headSection:
		return inHead
	case bodySection:
		return inBody
	default:
		return initial
	}
}

// tagKind is the closed set of tag names the tree constructor treats
// specially. Everything else is otherTag.
type tagKind uint

const (
	otherTag tagKind = iota
	doctypeTag
	htmlTag
	headTag
)

func classifyTagName(name string) tagKind {
	switch name {
	case "!doctype":
		return doctypeTag
	case "html":
		return htmlTag
	case "head":
		return headTag
	default:
		return otherTag
	}
}

// HTMLTreeConstructor places tokens into the sections of a Document.
type HTMLTreeConstructor struct {
	HTMLDocument  *Document
	insertionMode insertionMode
	log           *logrus.Entry
}

// NewHTMLTreeConstructor creates an HTMLTreeConstructor with an empty document.
func NewHTMLTreeConstructor(config Config) *HTMLTreeConstructor {
	return &HTMLTreeConstructor{
		HTMLDocument:  NewDocument(),
		insertionMode: initial,
		log:           config.logger().WithField("component", "tree"),
	}
}

// ProcessToken routes one token into the document.
func (c *HTMLTreeConstructor) ProcessToken(t Token) {
	switch t.TokenType {
	case endOfFileToken:
		return
	case characterToken:
		c.addTo(c.insertionMode.section(), t.Data, true)
		return
	}

	switch classifyTagName(t.TagName()) {
	case doctypeTag:
		if c.HTMLDocument.docType == "" {
			c.HTMLDocument.docType = t.Data
			return
		}
		c.log.WithField("token", t.Data).Debug("[TREE]: dropping repeated doctype")
	case htmlTag:
		// html tags never move the insertion point.
		c.addTo(htmlSection, t.Data, false)
	case headTag:
		c.addTo(headSection, t.Data, true)
	default:
		c.addTo(c.insertionMode.section(), t.Data, true)
	}
}

// addTo stores node in section k. A node carrying the section's own start or
// end tag replaces that tag instead of becoming content. Matching is a case
// insensitive substring search, so attributes and trailing whitespace are
// kept with the tag.
func (c *HTMLTreeConstructor) addTo(k sectionKey, node string, setMode bool) {
	var (
		section = c.HTMLDocument.section(k)
		name    = k.String()
		lower   = strings.ToLower(node)
		mode    = c.insertionMode
	)

	switch {
	case strings.Contains(lower, "<"+name):
		c.log.WithFields(logrus.Fields{"section": name, "tag": node}).Debug("[TREE]: start tag")
		section.Start = node
		mode = modeFor(k)
	case strings.Contains(lower, "/"+name+">"):
		c.log.WithFields(logrus.Fields{"section": name, "tag": node}).Debug("[TREE]: end tag")
		section.End = node
		mode = initial
	case k == htmlSection:
		// nowhere to put it, html only wraps head and body.
		c.log.WithField("tag", node).Debug("[TREE]: dropping malformed html tag")
	default:
		section.Content = append(section.Content, node)
	}

	if setMode {
		c.insertionMode = mode
	}
}
