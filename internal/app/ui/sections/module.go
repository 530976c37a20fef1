package sections

import "go.uber.org/fx"

// Module provides the section renderer
var Module = fx.Options(
	fx.Provide(NewRenderer),
)
