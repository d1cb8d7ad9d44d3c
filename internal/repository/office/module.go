package office

import "go.uber.org/fx"

// Module provides the office repository to the application graph.
var Module = fx.Provide(NewRepository)
