package report

import "go.uber.org/fx"

// Module provides the report service to the application graph.
var Module = fx.Provide(NewService)
