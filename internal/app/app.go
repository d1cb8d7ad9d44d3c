package app

import (
	"go.uber.org/fx"

	"github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/cache"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/logger"
	"github.com/Harihuynh2007/sales-app/internal/messaging"
	"github.com/Harihuynh2007/sales-app/internal/observability"
	repositorycustomer "github.com/Harihuynh2007/sales-app/internal/repository/customer"
	repositoryemployee "github.com/Harihuynh2007/sales-app/internal/repository/employee"
	repositoryoffice "github.com/Harihuynh2007/sales-app/internal/repository/office"
	repositoryorder "github.com/Harihuynh2007/sales-app/internal/repository/order"
	repositorypayment "github.com/Harihuynh2007/sales-app/internal/repository/payment"
	repositoryproduct "github.com/Harihuynh2007/sales-app/internal/repository/product"
	repositoryreport "github.com/Harihuynh2007/sales-app/internal/repository/report"
	repositoryuser "github.com/Harihuynh2007/sales-app/internal/repository/user"
	httpserver "github.com/Harihuynh2007/sales-app/internal/server/http"
	serviceauth "github.com/Harihuynh2007/sales-app/internal/service/auth"
	servicecustomer "github.com/Harihuynh2007/sales-app/internal/service/customer"
	serviceemployee "github.com/Harihuynh2007/sales-app/internal/service/employee"
	serviceoffice "github.com/Harihuynh2007/sales-app/internal/service/office"
	serviceorder "github.com/Harihuynh2007/sales-app/internal/service/order"
	servicepayment "github.com/Harihuynh2007/sales-app/internal/service/payment"
	serviceproduct "github.com/Harihuynh2007/sales-app/internal/service/product"
	servicereport "github.com/Harihuynh2007/sales-app/internal/service/report"
	transporthttp "github.com/Harihuynh2007/sales-app/internal/transport/http"
	"github.com/Harihuynh2007/sales-app/internal/worker"
	workerorder "github.com/Harihuynh2007/sales-app/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	auth.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositorycustomer.Module,
	repositoryemployee.Module,
	repositoryoffice.Module,
	repositoryorder.Module,
	repositorypayment.Module,
	repositoryproduct.Module,
	repositoryreport.Module,
	repositoryuser.Module,
	serviceauth.Module,
	servicecustomer.Module,
	serviceemployee.Module,
	serviceoffice.Module,
	serviceorder.Module,
	servicepayment.Module,
	serviceproduct.Module,
	servicereport.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
