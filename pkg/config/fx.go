package config

import (
	"os"

	"go.uber.org/fx"

	"github.com/mybatis-tools/mapperfmt/pkg/consts"
)

var Module = fx.Module("config", fx.Provide(
	// Attempts to load the configuration from mapperfmt.yaml in the current
	// directory, or from the file named by MAPPERFMT_CONFIG when set.
	// Returns nil if the file doesn't exist, allowing commands that don't
	// require config (like init, help, version) to function properly.
	func() (*Config, error) {
		path := os.Getenv(consts.EnvConfig)
		if path == "" {
			path = consts.ConfigFile
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadFile(path)
	},
))
