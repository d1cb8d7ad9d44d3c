package http

import (
	"go.uber.org/fx"

	authtransport "github.com/Harihuynh2007/sales-app/internal/transport/http/auth"
	customertransport "github.com/Harihuynh2007/sales-app/internal/transport/http/customer"
	employeetransport "github.com/Harihuynh2007/sales-app/internal/transport/http/employee"
	officetransport "github.com/Harihuynh2007/sales-app/internal/transport/http/office"
	ordertransport "github.com/Harihuynh2007/sales-app/internal/transport/http/order"
	paymenttransport "github.com/Harihuynh2007/sales-app/internal/transport/http/payment"
	producttransport "github.com/Harihuynh2007/sales-app/internal/transport/http/product"
	reporttransport "github.com/Harihuynh2007/sales-app/internal/transport/http/report"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	authtransport.Module,
	customertransport.Module,
	employeetransport.Module,
	officetransport.Module,
	ordertransport.Module,
	paymenttransport.Module,
	producttransport.Module,
	reporttransport.Module,
)
