package customer

import "go.uber.org/fx"

// Module provides the customer repository to the application graph.
var Module = fx.Provide(NewRepository)
