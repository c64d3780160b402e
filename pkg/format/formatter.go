package format

import (
	"io"

	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
	"github.com/mybatis-tools/mapperfmt/pkg/lexer"
	"github.com/mybatis-tools/mapperfmt/pkg/token"
)

// FormatterOptions configures how mapper documents are laid out.
type FormatterOptions struct {
	// Dialect classifies words during tokenization. Defaults to MySQL.
	Dialect dialect.Dialect

	// IndentSize is the number of spaces per indentation level.
	IndentSize int

	// AlignAliases pads SELECT column expressions so their AS aliases line
	// up in a single column.
	AlignAliases bool
}

// Defaults are the options used when nothing is configured.
var Defaults = FormatterOptions{
	Dialect:      dialect.MySQL,
	IndentSize:   consts.DefaultIndentSize,
	AlignAliases: true,
}

// Formatter renders tokenized mapper documents.
type Formatter struct {
	options FormatterOptions
}

// New creates a Formatter. A nil dialect or non-positive indent size falls
// back to the default.
func New(options FormatterOptions) *Formatter {
	if options.Dialect == nil {
		options.Dialect = dialect.Default()
	}
	if options.IndentSize <= 0 {
		options.IndentSize = consts.DefaultIndentSize
	}
	return &Formatter{options: options}
}

// Render formats an already tokenized document. No line in the result
// carries trailing whitespace and the result has no trailing newline.
func (f *Formatter) Render(tokens ...token.Token) string {
	return newLayout(f.options).render(tokens)
}

// Format renders tokens to w.
func (f *Formatter) Format(w io.Writer, tokens ...token.Token) error {
	_, err := io.WriteString(w, f.Render(tokens...))
	return err
}

// Document tokenizes source with the formatter's dialect and renders it.
func (f *Formatter) Document(source string) string {
	return f.Render(lexer.Tokenize(source, f.options.Dialect)...)
}

// Format renders tokens to w using the given options.
func Format(w io.Writer, options FormatterOptions, tokens ...token.Token) error {
	return New(options).Format(w, tokens...)
}

// Document tokenizes and renders source using the given options.
func Document(options FormatterOptions, source string) string {
	return New(options).Document(source)
}
