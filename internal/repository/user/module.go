package user

import "go.uber.org/fx"

// Module provides the user repository to the application graph.
var Module = fx.Provide(NewRepository)
