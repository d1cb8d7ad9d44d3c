package report

import "go.uber.org/fx"

// Module provides the report repository to the application graph.
var Module = fx.Provide(NewRepository)
