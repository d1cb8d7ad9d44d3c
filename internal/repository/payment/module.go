package payment

import "go.uber.org/fx"

// Module provides the payment repository to the application graph.
var Module = fx.Provide(NewRepository)
