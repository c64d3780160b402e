package token

import "strings"

// Token is a single lexical unit of a mapper document.
type Token struct {
	Kind Kind
	Text string
}

// IsTrivia reports whether the token carries no semantic content of its own:
// whitespace, newlines, and comments.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, Newline, XMLComment:
		return true
	}
	return false
}

// IsKeyword reports whether the token is a Keyword equal to word, ignoring
// case.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == Keyword && strings.EqualFold(t.Text, word)
}

// IsSymbol reports whether the token is the given Symbol.
func (t Token) IsSymbol(text string) bool {
	return t.Kind == Symbol && t.Text == text
}

// Tokens is an ordered sequence of tokens covering a source document.
type Tokens []Token

// String reassembles the source text the tokens were produced from.
func (ts Tokens) String() string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.Text)
	}
	return b.String()
}
