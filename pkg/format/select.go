package format

import (
	"strings"

	"github.com/mybatis-tools/mapperfmt/pkg/token"
)

// selectTerminators end a SELECT column list when seen at paren depth zero.
var selectTerminators = map[string]bool{
	"FROM":   true,
	"WHERE":  true,
	"GROUP":  true,
	"ORDER":  true,
	"HAVING": true,
	"UNION":  true,
	"LIMIT":  true,
	"INSERT": true,
	"UPDATE": true,
	"DELETE": true,
	"SET":    true,
	"VALUES": true,
}

type selectColumn struct {
	expr    string
	alias   string
	aliased bool
}

// alignedSelect renders a SELECT clause with one column per line and AS
// aliases padded into a single column. Returns false when the column list
// cannot be laid out this way (markup or a comment interrupts it), in which
// case the caller falls back to plain clause handling and the cursor is left
// untouched.
func (l *layout) alignedSelect(c *token.Cursor) bool {
	cols, next, ok := splitSelectColumns(c.Tokens(), c.Index())
	if !ok {
		return false
	}

	l.clauseDepth = 0
	l.needNewline = true
	l.write("SELECT")
	l.clauseDepth = 1

	width := 0
	for _, col := range cols {
		if col.aliased && len(col.expr) > width {
			width = len(col.expr)
		}
	}

	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		if col.expr == "" && col.alias == "" {
			continue
		}
		s := col.expr
		if col.aliased {
			s = padRight(s, width) + " AS " + col.alias
		}
		rendered = append(rendered, s)
	}

	for i, s := range rendered {
		if i < len(rendered)-1 {
			s += ","
		}
		l.needNewline = true
		l.write(s)
	}

	c.Seek(next)
	l.needNewline = true
	return true
}

// splitSelectColumns gathers the column list following a SELECT keyword,
// splitting on top-level commas. start indexes the first token after the
// keyword. The returned index is the terminator's position (the clause
// keyword or closing paren that ended the list, or len(tokens)).
func splitSelectColumns(tokens []token.Token, start int) ([]selectColumn, int, bool) {
	var groups [][]token.Token
	var cur []token.Token
	depth := 0
	next := len(tokens)

scan:
	for i := start; i < len(tokens); i++ {
		t := tokens[i]

		switch t.Kind {
		case token.Whitespace, token.Newline:
			continue
		case token.XMLTag, token.XMLProlog, token.XMLCData, token.XMLComment:
			// Markup or a comment inside the column list: alignment would
			// have to reflow it, so hand the clause back to the plain path.
			return nil, 0, false
		case token.Keyword:
			if depth == 0 && selectTerminators[strings.ToUpper(t.Text)] {
				next = i
				break scan
			}
		case token.Symbol:
			switch t.Text {
			case "(":
				depth++
			case ")":
				if depth == 0 {
					next = i
					break scan
				}
				depth--
			case ",":
				if depth == 0 {
					groups = append(groups, cur)
					cur = nil
					continue
				}
			}
		}

		cur = append(cur, t)
	}
	groups = append(groups, cur)

	cols := make([]selectColumn, 0, len(groups))
	for _, g := range groups {
		cols = append(cols, splitAlias(g))
	}
	return cols, next, true
}

// splitAlias splits a column group on its last top-level AS. An AS inside
// parens (CAST(x AS type)) is not an alias.
func splitAlias(group []token.Token) selectColumn {
	asIdx := -1
	depth := 0
	for i, t := range group {
		switch {
		case t.IsSymbol("("):
			depth++
		case t.IsSymbol(")"):
			if depth > 0 {
				depth--
			}
		case depth == 0 && t.IsKeyword("AS"):
			asIdx = i
		}
	}

	if asIdx < 0 {
		return selectColumn{expr: flatten(group)}
	}
	return selectColumn{
		expr:    flatten(group[:asIdx]),
		alias:   flatten(group[asIdx+1:]),
		aliased: true,
	}
}

// flatten joins tokens with single spaces, keeping punctuation tight and
// uppercasing keywords.
func flatten(tokens []token.Token) string {
	var b strings.Builder
	prev := ""
	for _, t := range tokens {
		text := t.Text
		if t.Kind == token.Keyword {
			text = strings.ToUpper(text)
		}
		if b.Len() > 0 && spaceBetween(prev, text) {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		prev = text
	}
	return b.String()
}

func spaceBetween(prev, next string) bool {
	if prev == "(" || strings.HasSuffix(prev, ".") {
		return false
	}
	if next == "," || next == ")" || strings.HasPrefix(next, ".") {
		return false
	}
	return true
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
