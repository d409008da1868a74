package parser

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTest struct {
	in       string
	expected string
}

var treeTests = []treeTest{
	{"", "<html><head></head><body></body></html>"},
	{"<head>", "<html><head></head><body></body></html>"},
	{"</head>", "<html><head></head><body></body></html>"},
	{`<head><meta charset="utf8" /></head>`, `<html><head><meta charset="utf8" /></head><body></body></html>`},
	{`<meta charset="utf8" /></head>`, `<html><head></head><body><meta charset="utf8" /></body></html>`},
	{`<meta charset="utf8" />`, `<html><head></head><body><meta charset="utf8" /></body></html>`},
	{"<body>", "<html><head></head><body></body></html>"},
	{"<body>Hi</body>", "<html><head></head><body>Hi</body></html>"},
	{"Hi</body>", "<html><head></head><body>Hi</body></html>"},
	{"Hi", "<html><head></head><body>Hi</body></html>"},
	{"<b", "<html><head></head><body><b></body></html>"},
	{"<", "<html><head></head><body><></body></html>"},
	{"<html>", "<html><head></head><body></body></html>"},
	{"<html>Hi</html>", "<html><head></head><body>Hi</body></html>"},
	{"Hi</html>", "<html><head></head><body>Hi</body></html>"},
	{"  <html>\n  Hi</html>   <body></body>", "<html>\n  <head></head><body>  Hi</body></html>   "},

	// doctype
	{"<!DOCTYPE html><!doctype html>Hi", "<!DOCTYPE html><html><head></head><body>Hi</body></html>"},
	{"Hi<!DOCTYPE html>", "<!DOCTYPE html><html><head></head><body>Hi</body></html>"},

	// root tags keep their attributes, casing and trailing whitespace.
	{`<head id="h">`, `<html><head id="h"></head><body></body></html>`},
	{
		"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<title>T</title>\n</head>\n<body class=\"x\">\n<p>P</p>\n</body>\n</html>\n",
		"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<title>T</title>\n</head>\n<body class=\"x\">\n<p>P</p>\n</body>\n</html>\n",
	},
	{"<HTML><HEAD><TITLE>x</TITLE></HEAD><BODY>y</BODY></HTML>", "<HTML><HEAD><TITLE>x</TITLE></HEAD><BODY>y</BODY></HTML>"},

	// insertion point
	{"<body>a</body>b", "<html><head></head><body>ab</body></html>"},
	{"<body>a<head>b", "<html><head>b</head><body>a</body></html>"},
	{"<head><html>x", "<html><head>x</head><body></body></html>"},
	{"<head><title>x</title><body>y", "<html><head><title>x</title><body>y</head><body></body></html>"},
	{"<head>a</head x>b", "<html><head>a</head x>b</head><body></body></html>"},

	// matching is by substring, not by tag name.
	{`<div data-x="<body>">z`, `<html><head></head><div data-x="<body>">z</body></html>`},

	// html has no content to hold a malformed html tag.
	{"</html foo>x", "<html><head></head><body>x</body></html>"},
}

func TestTreeConstructor(t *testing.T) {
	for _, test := range treeTests {
		runTreeConstructorTest(test, t)
	}
}

func runTreeConstructorTest(test treeTest, t *testing.T) {
	t.Run(test.in, func(t *testing.T) {
		t.Parallel()
		doc := NewParser(test.in, Config{}).Start()
		s := doc.String()
		if s != test.expected {
			t.Errorf("Wrong document. Expected: \n\n%s\nGot: \n\n%s", test.expected, s)
		}
	})
}

func TestTreeConstructorIdempotent(t *testing.T) {
	for _, test := range treeTests {
		once := Normalize(test.in)
		assert.Equal(t, once, Normalize(once), test.in)
	}
}

// A tag carrying another section's start tag in its name is only moved
// once it is the first thing in a slot, so normalizing again changes it.
func TestTreeConstructorMisplacedSectionTag(t *testing.T) {
	once := Normalize("<head>/</html><html><body<head>")
	assert.Equal(t, "<html><body<head>/</head><body></body></html>", once)
	assert.Equal(t, "<html><head></head><body>/</body></html>", Normalize(once))
}

func TestInsertionMode(t *testing.T) {
	tests := []struct {
		tokens []Token
		mode   insertionMode
	}{
		{[]Token{}, initial},
		{Tokenize("x"), initial},
		{Tokenize("<head>"), inHead},
		{Tokenize("<head>x<p>"), inHead},
		{Tokenize("<head></head>"), initial},
		{Tokenize("<head><html></html>"), inHead},
		{Tokenize("<body>"), inBody},
		{Tokenize("<body></body>"), initial},
		{Tokenize("<head><!DOCTYPE html>"), inHead},
		{Tokenize("<head></head x>"), inHead},
	}
	for _, tt := range tests {
		c := NewHTMLTreeConstructor(Config{})
		for _, token := range tt.tokens {
			c.ProcessToken(token)
		}
		assert.Equal(t, tt.mode, c.insertionMode, "%v", tt.tokens)
	}
}

func TestClassifyTagName(t *testing.T) {
	assert.Equal(t, doctypeTag, classifyTagName("!doctype"))
	assert.Equal(t, htmlTag, classifyTagName("html"))
	assert.Equal(t, headTag, classifyTagName("head"))
	assert.Equal(t, otherTag, classifyTagName("body"))
	assert.Equal(t, otherTag, classifyTagName(""))
	assert.Equal(t, otherTag, classifyTagName("HTML"))
}

func TestDocumentSections(t *testing.T) {
	doc := NewParser(`<!doctype html><html lang="en"><head><title>t</title></head><body class="x">b</body></html>`, Config{}).Start()

	assert.Equal(t, "<!doctype html>", doc.DocType())
	assert.Equal(t, Section{Start: `<html lang="en">`, End: "</html>"}, doc.HTML())
	assert.Equal(t, Section{Start: "<head>", End: "</head>", Content: []string{"<title>", "t", "</title>"}}, doc.Head())
	assert.Equal(t, Section{Start: `<body class="x">`, End: "</body>", Content: []string{"b"}}, doc.Body())

	body := doc.Body()
	body.Content[0] = "changed"
	assert.Equal(t, []string{"b"}, doc.Body().Content)

	// serializing twice gives the same result.
	assert.Equal(t, doc.String(), doc.String())
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	assert.Empty(t, doc.DocType())
	assert.Empty(t, doc.Head().Content)
	assert.Empty(t, doc.Body().Content)
	assert.Equal(t, "<html><head></head><body></body></html>", doc.String())
}

func TestTreeConstructorLogsDiscards(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	doc := NewParser("<!DOCTYPE html><!DOCTYPE other></html foo>", Config{Logger: logger}).Start()
	assert.Equal(t, "<!DOCTYPE html><html><head></head><body></body></html>", doc.String())

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	require.Contains(t, messages, "[TREE]: dropping repeated doctype")
	require.Contains(t, messages, "[TREE]: dropping malformed html tag")
}
