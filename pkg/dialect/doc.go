// Package dialect describes the SQL vocabulary of the database engines that
// mapper files are written against. A dialect tells the lexer which words are
// keywords, which are builtin functions, and which character quotes
// identifiers. Dialects are stateless values, safe to share across
// goroutines.
//
// Dialects are looked up by name:
//
//	d := dialect.For("postgresql")
//	d.IsKeyword("ilike") // true
//
// Lookup is forgiving: case, spaces, and punctuation are ignored, common
// aliases ("postgres", "mssql", "sqlite3") resolve to their engine, and
// unknown names fall back to MySQL so that callers never have to handle a
// missing dialect.
package dialect
