package lexer

import (
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
	"github.com/mybatis-tools/mapperfmt/pkg/token"
)

// def is the ordered rule table. Rule order is load-bearing: the first match
// at the current offset wins.
var def = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Newline", Pattern: `\r\n|\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "XMLProlog", Pattern: `<\?xml(?s:.*?)\?>`},
	{Name: "XMLDoctype", Pattern: `<!DOCTYPE[^>]*>`},
	{Name: "XMLComment", Pattern: `<!--(?s:.*?)-->`},
	{Name: "XMLCData", Pattern: `<!\[CDATA\[(?s:.*?)\]\]>`},
	{Name: "XMLTag", Pattern: `</?[\w:.\-]+(?:"[^"]*"|'[^']*'|[^>"'])*>`},
	{Name: "BindVariable", Pattern: `[#$]\{[^}]*\}`},
	{Name: "String", Pattern: `'(?:''|\\.|[^'\\])*'|"(?:""|\\.|[^"\\])*"`},
	{Name: "LineComment", Pattern: `--[^\r\n]*`},
	{Name: "EntityString", Pattern: `&apos;(?s:.*?)&apos;|&quot;(?s:.*?)&quot;`},
	{Name: "EntityRef", Pattern: `&#x[0-9a-fA-F]+;|&#[0-9]+;|&[a-zA-Z]\w*;`},
	{Name: "Operator", Pattern: `>=|<=|!=|<>`},
	{Name: "Word", Pattern: `[A-Za-z0-9_.]+`},
	{Name: "Any", Pattern: `(?s).`},
})

var (
	symbols  = def.Symbols()
	wordType = symbols["Word"]

	kinds = map[plexer.TokenType]token.Kind{
		symbols["Newline"]:      token.Newline,
		symbols["Whitespace"]:   token.Whitespace,
		symbols["XMLProlog"]:    token.XMLProlog,
		symbols["XMLDoctype"]:   token.XMLProlog,
		symbols["XMLComment"]:   token.XMLComment,
		symbols["XMLCData"]:     token.XMLCData,
		symbols["XMLTag"]:       token.XMLTag,
		symbols["BindVariable"]: token.BindVariable,
		symbols["String"]:       token.StringLiteral,
		symbols["LineComment"]:  token.XMLComment,
		symbols["EntityString"]: token.StringLiteral,
		symbols["EntityRef"]:    token.EntityRef,
		symbols["Operator"]:     token.Operator,
		symbols["Any"]:          token.Symbol,
	}
)

// Tokenize splits source into tokens, classifying word runs against d. A nil
// dialect means dialect.Default(). Tokenize never fails; input the rule
// table cannot place degrades to single-byte Symbol tokens so the stream
// still concatenates back to source exactly.
func Tokenize(source string, d dialect.Dialect) token.Tokens {
	if source == "" {
		return nil
	}
	if d == nil {
		d = dialect.Default()
	}

	lx, err := def.LexString("", source)
	if err != nil {
		return symbolRun(source)
	}

	tokens := make(token.Tokens, 0, len(source)/4+1)
	consumed := 0
	for {
		t, err := lx.Next()
		if err != nil {
			// Unreachable while the catch-all rule exists. Degrade rather
			// than drop input.
			return append(tokens, symbolRun(source[consumed:])...)
		}
		if t.EOF() {
			break
		}

		tokens = append(tokens, token.Token{Kind: classify(t, d), Text: t.Value})
		consumed += len(t.Value)
	}

	return tokens
}

func classify(t plexer.Token, d dialect.Dialect) token.Kind {
	if t.Type == wordType {
		switch {
		case d.IsKeyword(t.Value):
			return token.Keyword
		case t.Value == strings.ToUpper(t.Value) && d.IsFunction(t.Value):
			return token.Function
		default:
			return token.Identifier
		}
	}

	if k, ok := kinds[t.Type]; ok {
		return k
	}
	return token.Symbol
}

// symbolRun covers s with one Symbol token per byte.
func symbolRun(s string) token.Tokens {
	out := make(token.Tokens, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, token.Token{Kind: token.Symbol, Text: s[i : i+1]})
	}
	return out
}
