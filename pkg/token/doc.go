// Package token defines the lexical vocabulary shared by the lexer and the
// formatter: the set of token kinds, the Token value itself, and a cursor for
// walking token streams with trivia-aware lookahead.
//
// Tokens are plain values. The Text field always holds the exact source
// substring a token was produced from, so concatenating the Text of every
// token in order reproduces the original document byte for byte. Nothing in
// this package (or its consumers) mutates a token after creation.
package token
