package cmd

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("cli",
	fx.Provide(
		newLogger,
		fx.Annotate(dialects, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(highlightCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(list, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tokens, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
