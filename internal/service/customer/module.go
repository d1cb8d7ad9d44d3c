package customer

import "go.uber.org/fx"

// Module provides the customer service to the application graph.
var Module = fx.Provide(NewService)
