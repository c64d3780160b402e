package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the project configuration file
	ConfigFile = "mapperfmt.yaml"

	// EnvConfig overrides the configuration file location when set
	EnvConfig = "MAPPERFMT_CONFIG"

	// MapperExt is the file extension mapper files are discovered by
	MapperExt = ".xml"

	// DefaultIndentSize is the indent width used when none is configured
	DefaultIndentSize = 4

	// DefaultDialect is the SQL dialect assumed when none is configured
	DefaultDialect = "mysql"
)
