package dialect

import (
	"slices"
	"strings"
)

// Dialect describes the SQL vocabulary of one database engine.
type Dialect interface {
	// Name returns the canonical registry name, e.g. "mysql".
	Name() string

	// QuoteChar returns the character the engine uses to quote identifiers.
	QuoteChar() rune

	// IsKeyword reports whether word is a keyword, ignoring case.
	IsKeyword(word string) bool

	// IsFunction reports whether word names a builtin function, ignoring case.
	IsFunction(word string) bool

	// Keywords returns the keyword list in sorted order.
	Keywords() []string

	// Functions returns the builtin function list in sorted order.
	Functions() []string
}

// The supported engines. MariaDB shares the MySQL vocabulary with a handful
// of additions; the rest carry their own extras on top of the ANSI core.
var (
	MySQL      = newDialect("mysql", '`', mysqlKeywords, mysqlFunctions)
	MariaDB    = newDialect("mariadb", '`', mariadbKeywords, mysqlFunctions)
	PostgreSQL = newDialect("postgresql", '"', postgresKeywords, postgresFunctions)
	Oracle     = newDialect("oracle", '"', oracleKeywords, oracleFunctions)
	SQLServer  = newDialect("sqlserver", '[', sqlserverKeywords, sqlserverFunctions)
	SQLite     = newDialect("sqlite", '"', sqliteKeywords, sqliteFunctions)
	H2         = newDialect("h2", '"', h2Keywords, h2Functions)
	DB2        = newDialect("db2", '"', db2Keywords, db2Functions)
)

var registry = map[string]Dialect{
	"mysql":      MySQL,
	"mariadb":    MariaDB,
	"postgresql": PostgreSQL,
	"postgres":   PostgreSQL,
	"pgsql":      PostgreSQL,
	"oracle":     Oracle,
	"sqlserver":  SQLServer,
	"mssql":      SQLServer,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
	"h2":         H2,
	"db2":        DB2,
}

// Default returns the dialect assumed when none is configured.
func Default() Dialect { return MySQL }

// For returns the dialect registered under name. Unknown names fall back to
// MySQL.
func For(name string) Dialect {
	if d, ok := registry[normalizeName(name)]; ok {
		return d
	}
	return MySQL
}

// Known reports whether name resolves to a registered dialect.
func Known(name string) bool {
	_, ok := registry[normalizeName(name)]
	return ok
}

// Names returns the canonical names of all registered dialects, sorted.
func Names() []string {
	seen := make(map[string]struct{}, len(registry))
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		if _, ok := seen[d.Name()]; ok {
			continue
		}
		seen[d.Name()] = struct{}{}
		names = append(names, d.Name())
	}
	slices.Sort(names)
	return names
}

// QuoteIdentifier wraps name in d's identifier quotes, doubling any embedded
// closing quote characters. Bracket-quoting engines close with ] rather than
// the opening character.
func QuoteIdentifier(d Dialect, name string) string {
	if d.QuoteChar() == '[' {
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	}

	q := string(d.QuoteChar())
	return q + strings.ReplaceAll(name, q, q+q) + q
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '\t', '-', '_', '.':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

type dialect struct {
	name      string
	quote     rune
	keywords  map[string]struct{}
	functions map[string]struct{}

	keywordList  []string
	functionList []string
}

func newDialect(name string, quote rune, keywords, functions []string) *dialect {
	d := &dialect{
		name:      name,
		quote:     quote,
		keywords:  wordSet(ansiKeywords, keywords),
		functions: wordSet(commonFunctions, functions),
	}

	d.keywordList = sortedWords(d.keywords)
	d.functionList = sortedWords(d.functions)

	return d
}

func (d *dialect) Name() string { return d.name }

func (d *dialect) QuoteChar() rune { return d.quote }

func (d *dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[strings.ToUpper(word)]
	return ok
}

func (d *dialect) IsFunction(word string) bool {
	_, ok := d.functions[strings.ToUpper(word)]
	return ok
}

func (d *dialect) Keywords() []string { return d.keywordList }

func (d *dialect) Functions() []string { return d.functionList }

func wordSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			set[strings.ToUpper(w)] = struct{}{}
		}
	}
	return set
}

func sortedWords(set map[string]struct{}) []string {
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
