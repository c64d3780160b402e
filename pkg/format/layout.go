package format

import (
	"strings"

	"github.com/mybatis-tools/mapperfmt/pkg/token"
)

// clauseKeywords begin a new clause: the keyword returns to the clause base
// indent and everything after it indents one level deeper.
var clauseKeywords = map[string]bool{
	"SELECT": true,
	"FROM":   true,
	"WHERE":  true,
	"GROUP":  true,
	"ORDER":  true,
	"HAVING": true,
	"UNION":  true,
	"SET":    true,
	"VALUES": true,
	"UPDATE": true,
	"DELETE": true,
	"INSERT": true,
}

// joinQualifiers keep a following JOIN on the current line.
var joinQualifiers = map[string]bool{
	"LEFT":  true,
	"RIGHT": true,
	"INNER": true,
	"OUTER": true,
}

// layout is the rendering state machine. Output is assembled line by line;
// pending newline/space requests are resolved when the next visible token is
// written, with a newline always winning over a space.
type layout struct {
	opts FormatterOptions

	lines       []string
	line        strings.Builder
	lineHasText bool

	xmlDepth    int // open XML tags
	clauseDepth int // 0 on a clause keyword line, 1 inside a clause body
	extraIndent int // accumulated subquery indentation
	subqueries  int // open subquery parens

	parens  []bool // per open paren: true when it opened a subquery
	clauses []int  // clause depth saved when each subquery opened

	needNewline bool
	needSpace   bool

	lastKeyword string // uppercased text of the most recent keyword
}

func newLayout(opts FormatterOptions) *layout {
	return &layout{opts: opts}
}

func (l *layout) render(tokens []token.Token) string {
	c := token.NewCursor(tokens)
	for {
		tok, ok := c.Next()
		if !ok {
			break
		}

		switch tok.Kind {
		case token.Whitespace:
			l.needSpace = true
		case token.Newline:
			// Line structure is reconstructed, never preserved.
		case token.XMLProlog:
			l.ownLine(normalizeProlog(tok.Text))
		case token.XMLComment:
			l.ownLine(normalizeComment(tok.Text))
		case token.XMLCData:
			l.write(tok.Text)
		case token.XMLTag:
			l.xmlTag(tok.Text)
		case token.Keyword:
			l.keyword(tok, c)
		case token.Operator:
			l.needSpace = true
			l.write(tok.Text)
			l.needSpace = true
		case token.EntityRef:
			l.entityRef(tok, c)
		case token.BindVariable:
			l.write(tok.Text)
		case token.Symbol:
			l.symbol(tok, c)
		default:
			// Identifiers, functions, and string literals flow inline.
			l.write(tok.Text)
		}
	}
	return l.result()
}

// keyword dispatches on the layout role of a keyword. Clause starters reset
// to the clause base line, AND/OR break lines inside a clause, JOIN starts a
// line unless a qualifier (LEFT, RIGHT, ...) precedes it, and everything
// else flows inline.
func (l *layout) keyword(tok token.Token, c *token.Cursor) {
	upper := strings.ToUpper(tok.Text)

	switch {
	case clauseKeywords[upper]:
		l.clauseKeyword(upper, c)
	case upper == "JOIN":
		if joinQualifiers[l.lastKeyword] {
			l.needSpace = true
			l.write(upper)
		} else {
			l.clauseDepth = 0
			l.needNewline = true
			l.write(upper)
		}
	case upper == "AND", upper == "OR":
		l.needNewline = true
		l.write(upper)
		l.needSpace = true
	case upper == "ON":
		l.needSpace = true
		l.write(upper)
		l.clauseDepth = 1
	default:
		l.needSpace = true
		l.write(upper)
	}

	l.lastKeyword = upper
}

func (l *layout) clauseKeyword(upper string, c *token.Cursor) {
	if upper == "SELECT" && l.opts.AlignAliases && l.alignedSelect(c) {
		return
	}

	l.clauseDepth = 0
	l.needNewline = true
	l.write(upper)

	// Compound clause heads fold onto the keyword line.
	switch upper {
	case "GROUP", "ORDER":
		if next, ok := c.PeekNonTrivia(); ok && next.IsKeyword("BY") {
			c.NextNonTrivia()
			l.write(" BY")
		}
	case "UNION":
		if next, ok := c.PeekNonTrivia(); ok && next.IsKeyword("ALL") {
			c.NextNonTrivia()
			l.write(" ALL")
		}
	}

	l.clauseDepth = 1
	l.needNewline = true
}

// xmlTag prints a normalized tag on its own line. Close tags shift back a
// level before printing, open tags nest everything that follows, and any SQL
// clause state ends at the tag boundary.
func (l *layout) xmlTag(raw string) {
	norm, closing, selfClosing := normalizeTag(raw)

	l.clauseDepth = 0
	if closing && l.xmlDepth > 0 {
		l.xmlDepth--
	}

	l.needNewline = true
	l.write(norm)

	if !closing && !selfClosing {
		l.xmlDepth++
	}
	l.needNewline = true
}

func (l *layout) symbol(tok token.Token, c *token.Cursor) {
	switch tok.Text {
	case ",":
		// Commas attach to what came before them.
		l.needSpace = false
		l.write(",")
		if l.inPlainParens() {
			l.needSpace = true
		} else {
			l.needNewline = true
		}
	case "(":
		if next, ok := c.PeekNonTrivia(); ok && next.IsKeyword("SELECT") {
			l.openSubquery()
		} else {
			l.write("(")
			l.parens = append(l.parens, false)
		}
	case ")":
		l.closeParen()
	default:
		l.needSpace = true
		l.write(tok.Text)
	}
}

// openSubquery prints the paren, then shifts the indent baseline so the
// subquery body reads one level deeper than the clause that contains it.
func (l *layout) openSubquery() {
	l.write("(")
	l.parens = append(l.parens, true)
	l.clauses = append(l.clauses, l.clauseDepth)
	l.extraIndent += l.clauseDepth + 1
	l.subqueries++
	l.clauseDepth = 0
	l.needNewline = true
}

// closeParen pops the paren stack. Subquery parens restore the saved clause
// state first so the closing paren prints at the outer statement's indent;
// an unmatched paren just prints inline.
func (l *layout) closeParen() {
	if n := len(l.parens); n > 0 {
		sub := l.parens[n-1]
		l.parens = l.parens[:n-1]

		if sub {
			if l.subqueries > 0 {
				l.subqueries--
			}
			saved := 0
			if m := len(l.clauses); m > 0 {
				saved = l.clauses[m-1]
				l.clauses = l.clauses[:m-1]
			}
			l.extraIndent -= saved + 1
			if l.extraIndent < 0 {
				l.extraIndent = 0
			}
			l.clauseDepth = saved
			l.needNewline = true
		}
	}
	l.write(")")
}

// entityRef spaces an entity like an operator. An entity immediately
// followed by a bare = is fused with it, so &lt;= renders as one operator.
func (l *layout) entityRef(tok token.Token, c *token.Cursor) {
	text := tok.Text
	if next, ok := c.Peek(); ok && next.IsSymbol("=") {
		c.Next()
		text += "="
	}

	l.needSpace = true
	l.write(text)
	l.needSpace = true
}

func (l *layout) inPlainParens() bool {
	return len(l.parens) > 0 && !l.parens[len(l.parens)-1]
}

// ownLine emits s on a line of its own at the current indent.
func (l *layout) ownLine(s string) {
	l.needNewline = true
	l.write(s)
	l.needNewline = true
}

// write resolves pending requests and appends s to the current line.
func (l *layout) write(s string) {
	if l.needNewline {
		l.pushLine()
		l.line.WriteString(l.indent())
		l.lineHasText = false
		l.needNewline = false
		l.needSpace = false
	} else if l.needSpace {
		if l.lineHasText {
			l.line.WriteByte(' ')
		}
		l.needSpace = false
	}

	l.line.WriteString(s)
	l.lineHasText = true
}

func (l *layout) pushLine() {
	l.lines = append(l.lines, strings.TrimRight(l.line.String(), " \t"))
	l.line.Reset()
}

func (l *layout) indent() string {
	level := l.xmlDepth + l.extraIndent + l.clauseDepth
	if level < 0 {
		level = 0
	}
	return strings.Repeat(" ", level*l.opts.IndentSize)
}

func (l *layout) result() string {
	l.pushLine()
	return strings.TrimSpace(strings.Join(l.lines, "\n"))
}
