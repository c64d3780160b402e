package project

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
	"github.com/mybatis-tools/mapperfmt/pkg/lexer"
	"github.com/mybatis-tools/mapperfmt/pkg/token"
)

var (
	tagNameRe     = regexp.MustCompile(`^<\s*(/?)\s*([\w:.\-]+)`)
	namespaceRe   = regexp.MustCompile(`namespace\s*=\s*["']([^"']*)["']`)
	statementIDRe = regexp.MustCompile(`\bid\s*=\s*["']([^"']*)["']`)

	statementKinds = map[string]bool{
		"select": true,
		"insert": true,
		"update": true,
		"delete": true,
		"sql":    true,
	}
)

type (
	// Statement is a single SQL statement or reusable fragment declared in a
	// mapper file.
	Statement struct {
		// ID is the statement identifier within its namespace
		ID string

		// Kind is the declaring element name: select, insert, update,
		// delete, or sql
		Kind string

		// Line is the 1-based line the declaration starts on
		Line int
	}

	// Mapper is the parsed skeleton of a mapper file: its namespace and the
	// statements it declares.
	Mapper struct {
		Path       string
		Namespace  string
		Statements []Statement
	}
)

// ParseMapper reads a mapper file and extracts its namespace and statement
// declarations. Files that are not mapper documents parse to an empty
// skeleton rather than an error.
func ParseMapper(path string) (*Mapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return parseMapper(path, string(data)), nil
}

func parseMapper(path, source string) *Mapper {
	m := &Mapper{Path: path}

	line := 1
	for _, tok := range lexer.Tokenize(source, dialect.Default()) {
		if tok.Kind == token.XMLTag {
			name, closing := tagName(tok.Text)

			switch {
			case name == "mapper" && !closing && m.Namespace == "":
				if match := namespaceRe.FindStringSubmatch(tok.Text); match != nil {
					m.Namespace = match[1]
				}
			case statementKinds[name] && !closing:
				if match := statementIDRe.FindStringSubmatch(tok.Text); match != nil {
					m.Statements = append(m.Statements, Statement{
						ID:   match[1],
						Kind: name,
						Line: line,
					})
				}
			}
		}

		line += strings.Count(tok.Text, "\n")
	}

	return m
}

func tagName(raw string) (string, bool) {
	match := tagNameRe.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}

	return strings.ToLower(match[2]), match[1] == "/"
}

// Index parses every mapper file in the project.
func (p *Project) Index() ([]*Mapper, error) {
	files, err := p.Mappers()
	if err != nil {
		return nil, err
	}

	mappers := make([]*Mapper, 0, len(files))
	for _, file := range files {
		m, err := ParseMapper(file)
		if err != nil {
			return nil, err
		}

		mappers = append(mappers, m)
	}

	return mappers, nil
}
