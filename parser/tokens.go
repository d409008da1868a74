package parser

import (
	"strings"
)

//go:generate stringer -type=tokenType
type tokenType uint

const (
	characterToken tokenType = iota
	tagToken
	endOfFileToken
)

// Token is a concrete token that is ready to be emitted. Data holds the exact
// markup the token was built from, so concatenating the data of every token
// rebuilds the input.
type Token struct {
	TokenType tokenType
	Data      string
}

// TagName returns the lowercased name of a tag token: the text after the
// opening '<' and at most one '/', up to the first whitespace or '>'. Other
// token types have no name.
func (t Token) TagName() string {
	if t.TokenType != tagToken {
		return ""
	}

	name := strings.TrimPrefix(t.Data, "<")
	name = strings.TrimPrefix(name, "/")
	for i := 0; i < len(name); i++ {
		if name[i] == '>' || isASCIIWhitespace(int(name[i])) {
			name = name[:i]
			break
		}
	}

	return strings.ToLower(name)
}

// TokenBuilder builds tag tokens up during the tokenization phase.
type TokenBuilder struct {
	data strings.Builder
}

func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{}
}

// Reset clears the builder so a new tag can be collected.
func (t *TokenBuilder) Reset() {
	t.data.Reset()
}

// WriteData appends raw markup to the current tag.
func (t *TokenBuilder) WriteData(s string) {
	t.data.WriteString(s)
}

// TagToken creates a tag token from the builder contents.
func (t *TokenBuilder) TagToken() Token {
	return Token{
		TokenType: tagToken,
		Data:      t.data.String(),
	}
}

// CharacterToken creates a character token holding one rune's worth of input.
func (t *TokenBuilder) CharacterToken(s string) Token {
	return Token{
		TokenType: characterToken,
		Data:      s,
	}
}

// EndOfFileToken create an end of file token.
func (t *TokenBuilder) EndOfFileToken() Token {
	return Token{
		TokenType: endOfFileToken,
	}
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}
