package employee

import "go.uber.org/fx"

// Module provides the employee service to the application graph.
var Module = fx.Provide(NewService)
