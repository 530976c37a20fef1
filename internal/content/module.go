package content

import "go.uber.org/fx"

// Module provides the compiled-in portfolio
var Module = fx.Options(
	fx.Provide(Default),
)
