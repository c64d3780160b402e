package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
	"github.com/mybatis-tools/mapperfmt/pkg/format"
	"github.com/mybatis-tools/mapperfmt/pkg/utils"
)

type (
	// Connection names a database a project formats mappers against.
	//
	// A connection resolves to a SQL dialect either explicitly through the
	// dialect field or implicitly from the JDBC URL scheme of its DSN, so
	// teams can keep the same connection names they already use in their
	// MyBatis environment files.
	Connection struct {
		// Name is the identifier used with the --connection flag
		Name string `yaml:"name"`

		// Dialect overrides the dialect inferred from the DSN
		Dialect string `yaml:"dialect,omitempty"`

		// DSN is the JDBC URL of the connection, e.g. jdbc:mysql://db/app
		DSN string `yaml:"dsn,omitempty"`
	}

	// Config represents the project configuration for mapper formatting.
	Config struct {
		// Dialect selects the SQL dialect keywords are classified against
		Dialect string `yaml:"dialect,omitempty"`

		// Indent is the number of spaces per indentation level
		Indent int `yaml:"indent,omitempty"`

		// AlignAliases pads SELECT column aliases into a single column
		AlignAliases *bool `yaml:"align_aliases,omitempty"`

		// Connections are named databases mapped to their dialects
		Connections []*Connection `yaml:"connections,omitempty"`
	}
)

// Load parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing values are
// filled with defaults: the MySQL dialect, four-space indentation, and alias
// alignment enabled.
//
// Example:
//
//	yamlData := `
//	dialect: postgresql
//	indent: 2
//	`
//
//	cfg, err := config.Load(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Dialect)
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	// Fill in defaults for anything not specified
	if cfg.Dialect == "" {
		cfg.Dialect = consts.DefaultDialect
	}
	if cfg.Indent <= 0 {
		cfg.Indent = consts.DefaultIndentSize
	}
	if cfg.AlignAliases == nil {
		cfg.AlignAliases = utils.Ptr(true)
	}

	return &cfg, nil
}

// LoadFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls Load.
//
// Example:
//
//	cfg, err := config.LoadFile("mapperfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// FormatterOptions resolves the configuration into formatter options. A nil
// receiver yields the defaults, so commands work without a project config.
func (c *Config) FormatterOptions() format.FormatterOptions {
	opts := format.Defaults
	if c == nil {
		return opts
	}

	if c.Dialect != "" {
		opts.Dialect = dialect.For(c.Dialect)
	}
	if c.Indent > 0 {
		opts.IndentSize = c.Indent
	}
	if c.AlignAliases != nil {
		opts.AlignAliases = *c.AlignAliases
	}

	return opts
}

// Connection returns the named connection.
func (c *Config) Connection(name string) (*Connection, error) {
	if c != nil {
		for _, conn := range c.Connections {
			if conn.Name == name {
				return conn, nil
			}
		}
	}

	return nil, errors.Errorf("unknown connection: %s", name)
}

// DialectName resolves the dialect this connection formats with. An explicit
// dialect wins; otherwise the engine is taken from the JDBC URL scheme, e.g.
// jdbc:postgresql://... resolves to postgresql. Returns an empty string when
// neither is available.
func (c *Connection) DialectName() string {
	if c.Dialect != "" {
		return c.Dialect
	}

	rest, ok := strings.CutPrefix(c.DSN, "jdbc:")
	if !ok {
		return ""
	}

	engine, _, _ := strings.Cut(rest, ":")
	return engine
}
