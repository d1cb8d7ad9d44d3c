package auth

import "go.uber.org/fx"

// Module provides the auth service to the application graph.
var Module = fx.Provide(NewService)
