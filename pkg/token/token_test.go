package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/mybatis-tools/mapperfmt/pkg/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Keyword, "Keyword"},
		{Function, "Function"},
		{Identifier, "Identifier"},
		{StringLiteral, "StringLiteral"},
		{BindVariable, "BindVariable"},
		{Operator, "Operator"},
		{Symbol, "Symbol"},
		{XMLTag, "XMLTag"},
		{XMLComment, "XMLComment"},
		{XMLProlog, "XMLProlog"},
		{XMLCData, "XMLCData"},
		{EntityRef, "EntityRef"},
		{Whitespace, "Whitespace"},
		{Newline, "Newline"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}

	require.Equal(t, "Kind(99)", Kind(99).String())
}

func TestTokenIsTrivia(t *testing.T) {
	require.True(t, Token{Kind: Whitespace, Text: "  "}.IsTrivia())
	require.True(t, Token{Kind: Newline, Text: "\n"}.IsTrivia())
	require.True(t, Token{Kind: XMLComment, Text: "<!-- x -->"}.IsTrivia())
	require.False(t, Token{Kind: Keyword, Text: "SELECT"}.IsTrivia())
	require.False(t, Token{Kind: XMLTag, Text: "<select>"}.IsTrivia())
}

func TestTokenIsKeyword(t *testing.T) {
	tok := Token{Kind: Keyword, Text: "select"}
	require.True(t, tok.IsKeyword("SELECT"))
	require.True(t, tok.IsKeyword("select"))
	require.False(t, tok.IsKeyword("FROM"))

	// Same text, wrong kind.
	require.False(t, Token{Kind: Identifier, Text: "select"}.IsKeyword("SELECT"))
}

func TestTokenIsSymbol(t *testing.T) {
	require.True(t, Token{Kind: Symbol, Text: "("}.IsSymbol("("))
	require.False(t, Token{Kind: Symbol, Text: ")"}.IsSymbol("("))
	require.False(t, Token{Kind: Identifier, Text: "("}.IsSymbol("("))
}

func TestTokensString(t *testing.T) {
	source := "SELECT id,\n  name FROM users"
	ts := Tokens{
		{Keyword, "SELECT"},
		{Whitespace, " "},
		{Identifier, "id"},
		{Symbol, ","},
		{Newline, "\n"},
		{Whitespace, "  "},
		{Identifier, "name"},
		{Whitespace, " "},
		{Keyword, "FROM"},
		{Whitespace, " "},
		{Identifier, "users"},
	}

	require.Equal(t, source, ts.String())
}
