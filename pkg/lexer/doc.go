// Package lexer splits MyBatis mapper sources (mixed SQL and XML) into the
// flat token stream consumed by the formatter.
//
// The lexer is a single ordered rule table. Earlier rules win, which encodes
// the precedence that makes mixed content unambiguous: XML constructs are
// recognized before bind variables, quoted strings before -- line comments,
// entity-quoted string pairs before bare entity references, and
// multi-character operators before single symbols. Word runs are classified
// against a dialect (keyword, function, or identifier); anything no rule
// claims becomes a one-character Symbol token.
//
// Tokenize never returns an error. Every byte of the input is covered by
// exactly one token, so concatenating the stream reproduces the source.
package lexer
