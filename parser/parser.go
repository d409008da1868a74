package parser

// Parser wires a tokenizer to a tree constructor for a single run.
type Parser struct {
	Tokenizer       *HTMLTokenizer
	TreeConstructor *HTMLTreeConstructor
}

// NewParser creates a Parser over html.
func NewParser(html string, config Config) *Parser {
	return &Parser{
		Tokenizer:       NewHTMLTokenizer(html, config),
		TreeConstructor: NewHTMLTreeConstructor(config),
	}
}

// Start consumes every token and returns the populated document.
func (p *Parser) Start() *Document {
	for p.Tokenizer.Next() {
		p.TreeConstructor.ProcessToken(p.Tokenizer.Token())
	}

	return p.TreeConstructor.HTMLDocument
}
