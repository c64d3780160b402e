// Package format reconstructs the layout of MyBatis mapper files: mixed XML
// and SQL in one document, reprinted with consistent indentation.
//
// The formatter consumes the token stream produced by pkg/lexer and rebuilds
// line structure from scratch. XML tags take their own lines and nest, SQL
// clause keywords (SELECT, FROM, WHERE, ...) start clauses whose bodies sit
// one level deeper, subqueries indent relative to the clause that contains
// them, and SELECT column aliases are padded into an aligned column.
//
// Basic usage:
//
//	f := format.New(format.Defaults)
//	fmt.Println(f.Document(source))
//
// Or write straight to an io.Writer with explicit options:
//
//	opts := format.Defaults
//	opts.Dialect = dialect.For("postgresql")
//	if err := format.Format(os.Stdout, opts, tokens...); err != nil {
//		// ...
//	}
//
// Formatting is total: any token stream renders to something, and rendering
// an already formatted document reproduces it unchanged.
package format
