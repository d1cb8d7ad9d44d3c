package order

import "go.uber.org/fx"

// Module provides the order service to the application graph.
var Module = fx.Provide(NewService)
