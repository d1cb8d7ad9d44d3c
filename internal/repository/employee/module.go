package employee

import "go.uber.org/fx"

// Module provides the employee repository to the application graph.
var Module = fx.Provide(NewRepository)
