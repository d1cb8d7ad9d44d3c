package office

import "go.uber.org/fx"

// Module provides the office service to the application graph.
var Module = fx.Provide(NewService)
