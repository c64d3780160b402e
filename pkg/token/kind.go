package token

// Kind identifies the lexical class of a token.
type Kind int

//go:generate stringer -type=Kind

const (
	// Keyword is a word the active dialect recognizes as a SQL keyword.
	Keyword Kind = iota

	// Function is an uppercase word found in the dialect's function list.
	Function

	// Identifier is any other word run (names, numbers, qualified columns).
	Identifier

	// StringLiteral is a quoted string, including its quote characters.
	StringLiteral

	// BindVariable is a MyBatis #{...} or ${...} placeholder.
	BindVariable

	// Operator is a multi-character comparison operator such as >= or <>.
	Operator

	// Symbol is a single character that matched no other rule.
	Symbol

	// XMLTag is a complete open, close, or self-closing XML tag.
	XMLTag

	// XMLComment is an XML <!-- --> comment or a SQL -- line comment.
	XMLComment

	// XMLProlog is an XML declaration or DOCTYPE declaration.
	XMLProlog

	// XMLCData is a complete CDATA section.
	XMLCData

	// EntityRef is an XML entity reference such as &lt; or &#39;.
	EntityRef

	// Whitespace is a run of spaces and tabs within a line.
	Whitespace

	// Newline is a single \n or \r\n sequence.
	Newline
)
