package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "breakfast/internal/adapters/in/http"
	"breakfast/internal/adapters/out/postgres"
	"breakfast/internal/core/application/usecases/commands"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/jobs"
)

// CompositionRoot wires use-case handlers to their infrastructure
// dependencies. All handlers share one unit of work factory over the
// same database handle.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	now        func() time.Time
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		now:        time.Now,
	}
}

// CreateTokenIssuer builds the JWT issuer from the configured secret.
func (c *CompositionRoot) CreateTokenIssuer() httpin.TokenIssuer {
	ttl := time.Duration(c.config.JWTExpirationHours) * time.Hour
	return httpin.NewTokenIssuer(c.config.JWTSecret, ttl)
}

// CreateHandlers bundles every command and query handler for the HTTP server.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterAccount:   c.CreateRegisterAccountCommandHandler(),
		AccountUoWFactory: c.accountUoWFactory(),

		CreateCustomer:       commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateCustomer:       commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory()),
		CreateProduct:        commands.NewCreateProductCommandHandler(c.productUoWFactory()),
		UpdateProduct:        commands.NewUpdateProductCommandHandler(c.productUoWFactory()),
		CreateProvider:       commands.NewCreateProviderCommandHandler(c.providerUoWFactory()),
		UpdateProvider:       commands.NewUpdateProviderCommandHandler(c.providerUoWFactory()),
		DeleteProvider:       commands.NewDeleteProviderCommandHandler(c.providerUoWFactory()),
		CreateSale:           c.CreateCreateSaleCommandHandler(),
		UpdateSale:           c.CreateUpdateSaleCommandHandler(),
		ChangeSaleStatus:     commands.NewChangeSaleStatusCommandHandler(c.saleUoWFactory()),
		DeleteSale:           commands.NewDeleteSaleCommandHandler(c.saleUoWFactory()),
		StartDelivery:        commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory()),
		ReorderRoute:         commands.NewReorderRouteCommandHandler(c.saleUoWFactory()),
		SetNextDelivery:      commands.NewSetNextDeliveryCommandHandler(c.saleUoWFactory()),
		CompleteDeliveryStep: commands.NewCompleteDeliveryStepCommandHandler(c.deliveryUoWFactory(), c.now),
		SkipDeliveryStep:     commands.NewSkipDeliveryStepCommandHandler(c.saleUoWFactory()),
		ResetDeliveryStep:    commands.NewResetDeliveryStepCommandHandler(c.deliveryUoWFactory()),
		UpdatePortalOrder:    commands.NewUpdatePortalOrderCommandHandler(c.saleEditingUoWFactory(), c.config.OrderCutoffHours, c.now),

		GetSales:            queries.NewGetSalesQueryHandler(c.gormDB, c.config.OrderCutoffHours, c.now),
		GetSaleState:        queries.NewGetSaleStateQueryHandler(c.gormDB, c.config.OrderCutoffHours, c.now),
		GetDeliveryRoute:    queries.NewGetDeliveryRouteQueryHandler(c.gormDB),
		GetDeliveryProgress: queries.NewGetDeliveryProgressQueryHandler(c.gormDB),
		GetCustomers:        queries.NewGetCustomersQueryHandler(c.gormDB),
		GetProducts:         queries.NewGetProductsQueryHandler(c.gormDB),
		GetProviders:        queries.NewGetProvidersQueryHandler(c.gormDB),
		GetDashboard:        queries.NewGetDashboardQueryHandler(c.gormDB),

		GetPortalOverview:       queries.NewGetPortalOverviewQueryHandler(c.gormDB, c.config.OrderCutoffHours, c.now),
		GetPortalSale:           queries.NewGetPortalSaleQueryHandler(c.gormDB, c.config.OrderCutoffHours, c.now),
		GetPortalDeliveryStatus: queries.NewGetPortalDeliveryStatusQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateSaleCommandHandler() commands.CreateSaleCommandHandler {
	return commands.NewCreateSaleCommandHandler(c.saleEditingUoWFactory(), c.config.OrderCutoffHours, c.now)
}

func (c *CompositionRoot) CreateUpdateSaleCommandHandler() commands.UpdateSaleCommandHandler {
	return commands.NewUpdateSaleCommandHandler(c.saleEditingUoWFactory(), c.config.OrderCutoffHours, c.now)
}

func (c *CompositionRoot) CreateCloseExpiredSalesCommandHandler() commands.CloseExpiredSalesCommandHandler {
	return commands.NewCloseExpiredSalesCommandHandler(c.saleUoWFactory(), c.config.OrderCutoffHours, c.now)
}

// CreateJobManager wires the background jobs to their handlers.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCloseExpiredSalesCommandHandler(), logger)
}

func (c *CompositionRoot) saleUoWFactory() commands.SaleUoWFactory {
	return FuncSaleUoWFactory(func() commands.SaleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) providerUoWFactory() commands.ProviderUoWFactory {
	return FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) saleEditingUoWFactory() commands.SaleEditingUoWFactory {
	return FuncSaleEditingUoWFactory(func() commands.SaleEditingUoW {
		return c.uowFactory.Create()
	})
}

type FuncSaleUoWFactory func() commands.SaleUoW

func (f FuncSaleUoWFactory) Create() commands.SaleUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncSaleEditingUoWFactory func() commands.SaleEditingUoW

func (f FuncSaleEditingUoWFactory) Create() commands.SaleEditingUoW {
	return f()
}
