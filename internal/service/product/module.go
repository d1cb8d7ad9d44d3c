package product

import "go.uber.org/fx"

// Module provides the product service to the application graph.
var Module = fx.Provide(NewService)
