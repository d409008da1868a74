package parser

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type tokenizerState uint

const (
	dataState tokenizerState = iota
	tagState
	afterTagState
)

func (s tokenizerState) String() string {
	switch s {
	case dataState:
		return "data"
	case tagState:
		return "tag"
	case afterTagState:
		return "after-tag"
	default:
		return "unknown"
	}
}

type parserStateHandler func(c string, eof bool) (bool, tokenizerState)

// HTMLTokenizer splits markup into tag and character tokens in a single
// forward pass. It never fails: a tag left open at the end of the input is
// closed with a synthesized '>'.
type HTMLTokenizer struct {
	done          bool
	currentState  tokenizerState
	input         string
	pos           int
	emittedTokens []Token
	tokenBuilder  *TokenBuilder
	log           *logrus.Entry
}

// NewHTMLTokenizer creates a tokenizer over the given markup.
func NewHTMLTokenizer(html string, config Config) *HTMLTokenizer {
	return &HTMLTokenizer{
		currentState:  dataState,
		input:         html,
		emittedTokens: []Token{},
		tokenBuilder:  newTokenBuilder(),
		log:           config.logger().WithField("component", "tokenizer"),
	}
}

// Tokenize returns every token of html, without the end of file token.
func Tokenize(html string) []Token {
	p := NewHTMLTokenizer(html, Config{})
	tokens := []Token{}
	for p.Next() {
		t := p.Token()
		if t.TokenType == endOfFileToken {
			break
		}
		tokens = append(tokens, t)
	}

	return tokens
}

func (p *HTMLTokenizer) stateToParser(state tokenizerState) parserStateHandler {
	switch state {
	case tagState:
		return p.tagStateParser
	case afterTagState:
		return p.afterTagStateParser
	default:
		return p.dataStateParser
	}
}

func (p *HTMLTokenizer) emit(tokens ...Token) {
	p.emittedTokens = append(p.emittedTokens, tokens...)
}

func (p *HTMLTokenizer) dataStateParser(c string, eof bool) (bool, tokenizerState) {
	if eof {
		p.emit(p.tokenBuilder.EndOfFileToken())
		return false, dataState
	}
	switch c {
	case "<":
		p.tokenBuilder.Reset()
		p.tokenBuilder.WriteData(c)
		return false, tagState
	default:
		p.emit(p.tokenBuilder.CharacterToken(c))
		return false, dataState
	}
}

func (p *HTMLTokenizer) tagStateParser(c string, eof bool) (bool, tokenizerState) {
	if eof {
		// missing '>', close the tag ourselves.
		p.tokenBuilder.WriteData(">")
		p.emit(p.tokenBuilder.TagToken(), p.tokenBuilder.EndOfFileToken())
		return false, dataState
	}
	p.tokenBuilder.WriteData(c)
	if c == ">" {
		return false, afterTagState
	}
	return false, tagState
}

// afterTagStateParser keeps any whitespace after a tag on the tag itself.
func (p *HTMLTokenizer) afterTagStateParser(c string, eof bool) (bool, tokenizerState) {
	if eof {
		p.emit(p.tokenBuilder.TagToken(), p.tokenBuilder.EndOfFileToken())
		return false, dataState
	}
	if len(c) == 1 && isASCIIWhitespace(int(c[0])) {
		p.tokenBuilder.WriteData(c)
		return false, afterTagState
	}
	p.emit(p.tokenBuilder.TagToken())
	return true, dataState
}

func (p *HTMLTokenizer) takeLastEmittedToken() *Token {
	if len(p.emittedTokens) > 0 {
		ret := p.emittedTokens[0]
		p.emittedTokens = p.emittedTokens[1:]
		if ret.TokenType == endOfFileToken {
			p.done = true
		}
		return &ret
	}
	return nil
}

// Next reports whether there are tokens left, the end of file token included.
func (p *HTMLTokenizer) Next() bool {
	return !p.done
}

// Token returns the next token. Once the end of file token has been returned
// it keeps returning end of file tokens.
func (p *HTMLTokenizer) Token() Token {
	// some states emit more than 1 token at a time and sometimes no tokens.
	// loop until at least 1 token is emitted and then take them.
	for {
		token := p.takeLastEmittedToken()
		if token != nil {
			return *token
		}
		if p.done {
			return p.tokenBuilder.EndOfFileToken()
		}

		if p.pos >= len(p.input) {
			p.processRune("", true)
			continue
		}

		// invalid UTF-8 decodes with a width of 1, so bytes pass through as-is.
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		c := p.input[p.pos : p.pos+size]
		p.pos += size
		p.processRune(c, false)
	}
}

func (p *HTMLTokenizer) processRune(c string, eof bool) {
	reconsume := true
	for reconsume {
		reconsume, p.currentState = p.stateToParser(p.currentState)(c, eof)
		p.log.Tracef("[TOKEN]rune: %q , mode: %s", c, p.currentState)
	}
}
