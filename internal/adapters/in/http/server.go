// Package http provides the echo-based HTTP adapter: request models, JWT
// auth, and handlers that translate between the API surface and the
// application's commands and queries.
package http

import (
	"github.com/labstack/echo/v4"

	"breakfast/internal/adapters/out/report"
	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokenIssuer TokenIssuer

	// Auth dependencies
	registerAccountHandler commands.RegisterAccountCommandHandler
	accountUoWFactory      commands.AccountUoWFactory

	// Command handlers
	createCustomerHandler       commands.CreateCustomerCommandHandler
	updateCustomerHandler       commands.UpdateCustomerCommandHandler
	createProductHandler        commands.CreateProductCommandHandler
	updateProductHandler        commands.UpdateProductCommandHandler
	createProviderHandler       commands.CreateProviderCommandHandler
	updateProviderHandler       commands.UpdateProviderCommandHandler
	deleteProviderHandler       commands.DeleteProviderCommandHandler
	createSaleHandler           commands.CreateSaleCommandHandler
	updateSaleHandler           commands.UpdateSaleCommandHandler
	changeSaleStatusHandler     commands.ChangeSaleStatusCommandHandler
	deleteSaleHandler           commands.DeleteSaleCommandHandler
	startDeliveryHandler        commands.StartDeliveryCommandHandler
	reorderRouteHandler         commands.ReorderRouteCommandHandler
	setNextDeliveryHandler      commands.SetNextDeliveryCommandHandler
	completeDeliveryStepHandler commands.CompleteDeliveryStepCommandHandler
	skipDeliveryStepHandler     commands.SkipDeliveryStepCommandHandler
	resetDeliveryStepHandler    commands.ResetDeliveryStepCommandHandler
	updatePortalOrderHandler    commands.UpdatePortalOrderCommandHandler

	// Query handlers
	getSalesHandler            queries.GetSalesQueryHandler
	getSaleStateHandler        queries.GetSaleStateQueryHandler
	getDeliveryRouteHandler    queries.GetDeliveryRouteQueryHandler
	getDeliveryProgressHandler queries.GetDeliveryProgressQueryHandler
	getCustomersHandler        queries.GetCustomersQueryHandler
	getProductsHandler         queries.GetProductsQueryHandler
	getProvidersHandler        queries.GetProvidersQueryHandler
	getDashboardHandler        queries.GetDashboardQueryHandler

	// Customer portal, authorized by access token instead of a login
	getPortalOverviewHandler       queries.GetPortalOverviewQueryHandler
	getPortalSaleHandler           queries.GetPortalSaleQueryHandler
	getPortalDeliveryStatusHandler queries.GetPortalDeliveryStatusQueryHandler

	routeWriter report.ExcelRouteWriter
}

// Handlers bundles the use-case dependencies of the HTTP server.
type Handlers struct {
	RegisterAccount   commands.RegisterAccountCommandHandler
	AccountUoWFactory commands.AccountUoWFactory

	CreateCustomer       commands.CreateCustomerCommandHandler
	UpdateCustomer       commands.UpdateCustomerCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	CreateProvider       commands.CreateProviderCommandHandler
	UpdateProvider       commands.UpdateProviderCommandHandler
	DeleteProvider       commands.DeleteProviderCommandHandler
	CreateSale           commands.CreateSaleCommandHandler
	UpdateSale           commands.UpdateSaleCommandHandler
	ChangeSaleStatus     commands.ChangeSaleStatusCommandHandler
	DeleteSale           commands.DeleteSaleCommandHandler
	StartDelivery        commands.StartDeliveryCommandHandler
	ReorderRoute         commands.ReorderRouteCommandHandler
	SetNextDelivery      commands.SetNextDeliveryCommandHandler
	CompleteDeliveryStep commands.CompleteDeliveryStepCommandHandler
	SkipDeliveryStep     commands.SkipDeliveryStepCommandHandler
	ResetDeliveryStep    commands.ResetDeliveryStepCommandHandler
	UpdatePortalOrder    commands.UpdatePortalOrderCommandHandler

	GetSales            queries.GetSalesQueryHandler
	GetSaleState        queries.GetSaleStateQueryHandler
	GetDeliveryRoute    queries.GetDeliveryRouteQueryHandler
	GetDeliveryProgress queries.GetDeliveryProgressQueryHandler
	GetCustomers        queries.GetCustomersQueryHandler
	GetProducts         queries.GetProductsQueryHandler
	GetProviders        queries.GetProvidersQueryHandler
	GetDashboard        queries.GetDashboardQueryHandler

	GetPortalOverview       queries.GetPortalOverviewQueryHandler
	GetPortalSale           queries.GetPortalSaleQueryHandler
	GetPortalDeliveryStatus queries.GetPortalDeliveryStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(tokenIssuer TokenIssuer, handlers Handlers) *Server {
	return &Server{
		tokenIssuer:                 tokenIssuer,
		registerAccountHandler:      handlers.RegisterAccount,
		accountUoWFactory:           handlers.AccountUoWFactory,
		createCustomerHandler:       handlers.CreateCustomer,
		updateCustomerHandler:       handlers.UpdateCustomer,
		createProductHandler:        handlers.CreateProduct,
		updateProductHandler:        handlers.UpdateProduct,
		createProviderHandler:       handlers.CreateProvider,
		updateProviderHandler:       handlers.UpdateProvider,
		deleteProviderHandler:       handlers.DeleteProvider,
		createSaleHandler:           handlers.CreateSale,
		updateSaleHandler:           handlers.UpdateSale,
		changeSaleStatusHandler:     handlers.ChangeSaleStatus,
		deleteSaleHandler:           handlers.DeleteSale,
		startDeliveryHandler:        handlers.StartDelivery,
		reorderRouteHandler:         handlers.ReorderRoute,
		setNextDeliveryHandler:      handlers.SetNextDelivery,
		completeDeliveryStepHandler: handlers.CompleteDeliveryStep,
		skipDeliveryStepHandler:     handlers.SkipDeliveryStep,
		resetDeliveryStepHandler:    handlers.ResetDeliveryStep,
		updatePortalOrderHandler:    handlers.UpdatePortalOrder,
		getSalesHandler:             handlers.GetSales,
		getSaleStateHandler:         handlers.GetSaleState,
		getDeliveryRouteHandler:     handlers.GetDeliveryRoute,
		getDeliveryProgressHandler:  handlers.GetDeliveryProgress,
		getCustomersHandler:         handlers.GetCustomers,
		getProductsHandler:          handlers.GetProducts,
		getProvidersHandler:         handlers.GetProviders,
		getDashboardHandler:         handlers.GetDashboard,

		getPortalOverviewHandler:       handlers.GetPortalOverview,
		getPortalSaleHandler:           handlers.GetPortalSale,
		getPortalDeliveryStatusHandler: handlers.GetPortalDeliveryStatus,

		routeWriter: report.NewExcelRouteWriter(),
	}
}

// RegisterRoutes wires the API surface onto the echo instance. Everything
// under /api/v1 except the auth endpoints and the customer portal requires
// a Bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	// Customer self-service pages: the access token in the path authorizes
	// the request, so no Bearer token is required.
	api.GET("/portal/:token", s.GetPortalOverview)
	api.GET("/portal/:token/sales/:saleID", s.GetPortalSale)
	api.PUT("/portal/:token/sales/:saleID/order", s.UpdatePortalOrder)
	api.GET("/portal/:token/sales/:saleID/delivery", s.GetPortalDeliveryStatus)

	authed := api.Group("", RequireAuth(s.tokenIssuer))

	authed.GET("/customers", s.GetCustomers)
	authed.POST("/customers", s.CreateCustomer)
	authed.PUT("/customers/:customerID", s.UpdateCustomer)

	authed.GET("/products", s.GetProducts)
	authed.POST("/products", s.CreateProduct)
	authed.PUT("/products/:productID", s.UpdateProduct)

	authed.GET("/providers", s.GetProviders)
	authed.POST("/providers", s.CreateProvider)
	authed.PUT("/providers/:providerID", s.UpdateProvider)
	authed.DELETE("/providers/:providerID", s.DeleteProvider)

	authed.GET("/sales", s.GetSales)
	authed.POST("/sales", s.CreateSale)
	authed.GET("/sales/:saleID", s.GetSale)
	authed.PUT("/sales/:saleID", s.UpdateSale)
	authed.DELETE("/sales/:saleID", s.DeleteSale)
	authed.PATCH("/sales/:saleID/status", s.ChangeSaleStatus)

	authed.POST("/sales/:saleID/delivery", s.StartDelivery)
	authed.GET("/sales/:saleID/delivery", s.GetDeliveryRoute)
	authed.GET("/sales/:saleID/delivery/export", s.ExportDeliveryRoute)
	authed.GET("/sales/:saleID/delivery/progress", s.GetDeliveryProgress)
	authed.PUT("/sales/:saleID/delivery/order", s.ReorderRoute)
	authed.PATCH("/sales/:saleID/delivery/:customerID/next", s.SetNextDelivery)
	authed.PATCH("/sales/:saleID/delivery/:customerID/complete", s.CompleteDeliveryStep)
	authed.PATCH("/sales/:saleID/delivery/:customerID/skip", s.SkipDeliveryStep)
	authed.PATCH("/sales/:saleID/delivery/:customerID/reset", s.ResetDeliveryStep)

	authed.GET("/dashboard", s.GetDashboard)
}
