package config_test

import (
	_ "embed"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
)

//go:embed testdata/mapperfmt.yaml
var testConfigYAML string

func TestLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := Load(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := Load(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal project config")

		// Empty input
		config, err = Load(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal project config")
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := Load(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.NotNil(t, config)
		require.Equal(t, consts.DefaultDialect, config.Dialect)
		require.Equal(t, consts.DefaultIndentSize, config.Indent)
		require.NotNil(t, config.AlignAliases)
		require.True(t, *config.AlignAliases)
		require.Empty(t, config.Connections)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "mapperfmt_test_*.yaml")
		require.NoError(t, err)
		defer os.Remove(tempFile.Name())

		_, err = tempFile.WriteString(testConfigYAML)
		require.NoError(t, err)
		require.NoError(t, tempFile.Close())

		config, err := LoadFile(tempFile.Name())
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")
	})
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, "postgresql", config.Dialect)
	require.Equal(t, 2, config.Indent)
	require.NotNil(t, config.AlignAliases)
	require.False(t, *config.AlignAliases)
	require.Len(t, config.Connections, 2)
	require.Equal(t, "primary", config.Connections[0].Name)
	require.Equal(t, "reporting", config.Connections[1].Name)
}

func TestFormatterOptions(t *testing.T) {
	t.Run("resolves configured values", func(t *testing.T) {
		config, err := Load(strings.NewReader(testConfigYAML))
		require.NoError(t, err)

		opts := config.FormatterOptions()
		require.Equal(t, dialect.PostgreSQL, opts.Dialect)
		require.Equal(t, 2, opts.IndentSize)
		require.False(t, opts.AlignAliases)
	})

	t.Run("nil config yields defaults", func(t *testing.T) {
		var config *Config

		opts := config.FormatterOptions()
		require.Equal(t, dialect.MySQL, opts.Dialect)
		require.Equal(t, consts.DefaultIndentSize, opts.IndentSize)
		require.True(t, opts.AlignAliases)
	})
}

func TestConnection(t *testing.T) {
	config, err := Load(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		conn, err := config.Connection("reporting")
		require.NoError(t, err)
		require.Equal(t, "oracle", conn.Dialect)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := config.Connection("staging")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown connection: staging")
	})

	t.Run("nil config", func(t *testing.T) {
		var nilConfig *Config
		_, err := nilConfig.Connection("primary")
		require.Error(t, err)
	})
}

func TestConnectionDialectName(t *testing.T) {
	tests := []struct {
		name     string
		conn     Connection
		expected string
	}{
		{
			name:     "explicit dialect wins",
			conn:     Connection{Dialect: "oracle", DSN: "jdbc:mysql://db/app"},
			expected: "oracle",
		},
		{
			name:     "inferred from jdbc url",
			conn:     Connection{DSN: "jdbc:postgresql://db.internal:5432/app"},
			expected: "postgresql",
		},
		{
			name:     "inferred from multi segment jdbc url",
			conn:     Connection{DSN: "jdbc:oracle:thin:@warehouse:1521/dw"},
			expected: "oracle",
		},
		{
			name:     "no dsn",
			conn:     Connection{Name: "x"},
			expected: "",
		},
		{
			name:     "non jdbc dsn",
			conn:     Connection{DSN: "postgres://db/app"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.conn.DialectName())
		})
	}
}
