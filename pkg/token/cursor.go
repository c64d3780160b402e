package token

// Cursor is a forward-only reader over a token slice. All lookahead in the
// formatter goes through one of these so that "next meaningful token" means
// the same thing at every call site.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Index returns the position of the next token to be read.
func (c *Cursor) Index() int { return c.pos }

// Len returns the total number of tokens under the cursor.
func (c *Cursor) Len() int { return len(c.tokens) }

// Tokens returns the underlying token slice.
func (c *Cursor) Tokens() []Token { return c.tokens }

// Seek repositions the cursor, clamping to the bounds of the token slice.
func (c *Cursor) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(c.tokens) {
		i = len(c.tokens)
	}
	c.pos = i
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// PeekNonTrivia returns the next non-trivia token without consuming anything.
func (c *Cursor) PeekNonTrivia() (Token, bool) {
	for i := c.pos; i < len(c.tokens); i++ {
		if !c.tokens[i].IsTrivia() {
			return c.tokens[i], true
		}
	}
	return Token{}, false
}

// NextNonTrivia consumes tokens up to and including the next non-trivia token
// and returns it. The trivia passed over is discarded.
func (c *Cursor) NextNonTrivia() (Token, bool) {
	for c.pos < len(c.tokens) {
		t := c.tokens[c.pos]
		c.pos++
		if !t.IsTrivia() {
			return t, true
		}
	}
	return Token{}, false
}
