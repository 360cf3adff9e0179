package queries_test

import (
	"context"
	"testing"
	"time"

	"breakfast/internal/adapters/out/postgres"
	"breakfast/internal/adapters/out/postgres/accountrepo"
	"breakfast/internal/adapters/out/postgres/customerrepo"
	"breakfast/internal/adapters/out/postgres/productrepo"
	"breakfast/internal/adapters/out/postgres/providerrepo"
	"breakfast/internal/adapters/out/postgres/salerepo"
	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/customer"
	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/product"
	"breakfast/internal/core/domain/model/provider"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&providerrepo.ProviderDTO{},
		&salerepo.SaleDTO{},
		&salerepo.ItemDTO{},
		&salerepo.DeliveryStepDTO{},
	)
	suite.Require().NoError(err)

	suite.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE sales, sale_items, delivery_steps, customers, products, providers, accounts CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetDeliveryRoute_OrdersStopsAndPreviewsCredit() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 10)
	bruno := suite.seedCustomer(ownerID, "Bruno", 0)

	s := suite.seedInProgressSale(ownerID, []routeLine{
		{customerID: ana.ID(), quantity: 2, sellPrice: 5},
		{customerID: bruno.ID(), quantity: 1, sellPrice: 5},
	}, []kernel.UUID{ana.ID(), bruno.ID()})

	query, err := queries.NewGetDeliveryRouteQuery(s.ID(), ownerID)
	suite.Require().NoError(err)

	handler := queries.NewGetDeliveryRouteQueryHandler(suite.db)
	route, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(s.ID(), route.SaleID)
	suite.Equal("in_progress", route.Status)
	suite.Require().Len(route.Stops, 2)

	first := route.Stops[0]
	suite.Equal(ana.ID(), first.CustomerID)
	suite.Equal("Ana", first.CustomerName)
	suite.Equal(0, first.SequenceOrder)
	suite.Equal("pending", first.Status)
	suite.True(first.IsNext)
	suite.InDelta(10.0, first.AmountExpected, 0.001)
	suite.InDelta(10.0, first.CreditToApply, 0.001)
	suite.InDelta(0.0, first.AmountToCollect, 0.001)

	second := route.Stops[1]
	suite.Equal(bruno.ID(), second.CustomerID)
	suite.Equal(1, second.SequenceOrder)
	suite.False(second.IsNext)
	suite.InDelta(5.0, second.AmountExpected, 0.001)
	suite.InDelta(0.0, second.CreditToApply, 0.001)
	suite.InDelta(5.0, second.AmountToCollect, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetDeliveryRoute_UnknownSale() {
	query, err := queries.NewGetDeliveryRouteQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetDeliveryRouteQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetDeliveryRoute_ScopedToOwner() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)
	s := suite.seedInProgressSale(ownerID, []routeLine{
		{customerID: ana.ID(), quantity: 1, sellPrice: 5},
	}, []kernel.UUID{ana.ID()})

	query, err := queries.NewGetDeliveryRouteQuery(s.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetDeliveryRouteQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetDeliveryProgress_CountsStepOutcomes() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)
	bruno := suite.seedCustomer(ownerID, "Bruno", 0)
	carla := suite.seedCustomer(ownerID, "Carla", 0)

	s := suite.seedInProgressSale(ownerID, []routeLine{
		{customerID: ana.ID(), quantity: 2, sellPrice: 5},
		{customerID: bruno.ID(), quantity: 1, sellPrice: 5},
		{customerID: carla.ID(), quantity: 1, sellPrice: 3},
	}, []kernel.UUID{ana.ID(), bruno.ID(), carla.ID()})

	err := s.CompleteStep(ana.ID(), suite.money(10), kernel.ZeroMoney(), time.Now())
	suite.Require().NoError(err)
	err = s.SkipStep(bruno.ID(), "not home")
	suite.Require().NoError(err)
	err = s.SetNextStep(carla.ID())
	suite.Require().NoError(err)
	suite.updateSale(s)

	query, err := queries.NewGetDeliveryProgressQuery(s.ID(), ownerID)
	suite.Require().NoError(err)

	handler := queries.NewGetDeliveryProgressQueryHandler(suite.db)
	progress, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("in_progress", progress.Status)
	suite.Equal(3, progress.TotalStops)
	suite.Equal(1, progress.CompletedStops)
	suite.Equal(1, progress.SkippedStops)
	suite.Equal(1, progress.PendingStops)
	suite.InDelta(66.7, progress.PercentComplete, 0.001)
	suite.InDelta(10.0, progress.TotalCollected, 0.001)
	suite.InDelta(18.0, progress.TotalExpected, 0.001)
	suite.InDelta(5.0, progress.TotalSkippedAmount, 0.001)
	suite.Require().NotNil(progress.NextCustomerID)
	suite.Equal(carla.ID(), *progress.NextCustomerID)
	suite.Equal("Carla", progress.NextCustomerName)
}

func (suite *QueryHandlersTestSuite) TestGetSaleState_ComputesLineTotalsAndCutoff() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)
	productID := suite.seedProduct(ownerID, "Croissant", 1, 5)

	deliveryDate := time.Now().Add(14 * 24 * time.Hour)
	item, err := sale.NewItem(ana.ID(), productID, 3, suite.money(1), suite.money(5))
	suite.Require().NoError(err)
	s, err := sale.NewSale(kernel.NewUUID(), ownerID, deliveryDate, []*sale.Item{item})
	suite.Require().NoError(err)
	suite.addSale(s)

	query, err := queries.NewGetSaleStateQuery(s.ID(), ownerID)
	suite.Require().NoError(err)

	handler := queries.NewGetSaleStateQueryHandler(suite.db, sale.DefaultCutoffHours, time.Now)
	state, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("draft", state.Status)
	suite.True(state.IsOpen)
	suite.Greater(state.HoursRemaining, 0.0)
	suite.Require().Len(state.Items, 1)
	suite.Equal("Ana", state.Items[0].CustomerName)
	suite.Equal("Croissant", state.Items[0].ProductName)
	suite.Equal(3, state.Items[0].Quantity)
	suite.InDelta(15.0, state.Items[0].LineTotal, 0.001)
	suite.InDelta(15.0, state.TotalExpected, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetCustomers_OrdersByNameWithinOwner() {
	ownerID := kernel.NewUUID()
	suite.seedCustomer(ownerID, "zoe", 0)
	suite.seedCustomer(ownerID, "Ana", 2.5)
	suite.seedCustomer(kernel.NewUUID(), "Other", 0)

	query, err := queries.NewGetCustomersQuery(ownerID)
	suite.Require().NoError(err)

	handler := queries.NewGetCustomersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal("Ana", result[0].Name)
	suite.InDelta(2.5, result[0].CreditBalance, 0.001)
	suite.Equal("zoe", result[1].Name)
}

func (suite *QueryHandlersTestSuite) TestGetProducts_ComputesMargin() {
	ownerID := kernel.NewUUID()
	suite.seedProduct(ownerID, "Croissant", 1.2, 3)

	query, err := queries.NewGetProductsQuery(ownerID)
	suite.Require().NoError(err)

	handler := queries.NewGetProductsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal("Croissant", result[0].Name)
	suite.InDelta(1.8, result[0].Margin, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetDashboard_AggregatesAcrossSales() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 4)
	suite.seedProduct(ownerID, "Croissant", 1, 5)

	completed := suite.seedInProgressSale(ownerID, []routeLine{
		{customerID: ana.ID(), quantity: 2, sellPrice: 5},
	}, []kernel.UUID{ana.ID()})
	err := completed.CompleteStep(ana.ID(), suite.money(6), suite.money(4), time.Now())
	suite.Require().NoError(err)
	suite.updateSale(completed)

	draftItem, err := sale.NewItem(ana.ID(), kernel.NewUUID(), 1, suite.money(1), suite.money(5))
	suite.Require().NoError(err)
	draft, err := sale.NewSale(kernel.NewUUID(), ownerID, time.Now().Add(7*24*time.Hour), []*sale.Item{draftItem})
	suite.Require().NoError(err)
	suite.addSale(draft)

	query, err := queries.NewGetDashboardQuery(ownerID, time.Time{}, time.Time{})
	suite.Require().NoError(err)

	handler := queries.NewGetDashboardQueryHandler(suite.db)
	dashboard, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(1, dashboard.CustomerCount)
	suite.Equal(1, dashboard.ProductCount)
	suite.Equal(1, dashboard.DraftSales)
	suite.Equal(1, dashboard.CompletedSales)
	suite.InDelta(10.0, dashboard.TotalRevenue, 0.001)
	suite.InDelta(8.0, dashboard.TotalBenefit, 0.001)
	suite.InDelta(6.0, dashboard.TotalCollected, 0.001)
	suite.InDelta(4.0, dashboard.TotalCreditApplied, 0.001)
	suite.InDelta(4.0, dashboard.OutstandingCredit, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetProviders_OrdersByNameWithinOwner() {
	ownerID := kernel.NewUUID()
	suite.seedProvider(ownerID, "Panificadora Sol", "sol@example.com")
	suite.seedProvider(ownerID, "granja norte", "norte@example.com")
	suite.seedProvider(kernel.NewUUID(), "Other", "other@example.com")

	query, err := queries.NewGetProvidersQuery(ownerID)
	suite.Require().NoError(err)

	handler := queries.NewGetProvidersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal("granja norte", result[0].Name)
	suite.Equal("norte@example.com", result[0].Email)
	suite.Equal("Panificadora Sol", result[1].Name)
}

func (suite *QueryHandlersTestSuite) TestGetPortalOverview_ResolvesTokenAndListsSales() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)

	item, err := sale.NewItem(ana.ID(), kernel.NewUUID(), 1, suite.money(1), suite.money(5))
	suite.Require().NoError(err)
	s, err := sale.NewSale(kernel.NewUUID(), ownerID, time.Now().Add(7*24*time.Hour), []*sale.Item{item})
	suite.Require().NoError(err)
	suite.addSale(s)

	query, err := queries.NewGetPortalOverviewQuery(ana.AccessToken())
	suite.Require().NoError(err)

	handler := queries.NewGetPortalOverviewQueryHandler(suite.db, sale.DefaultCutoffHours, time.Now)
	overview, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(ana.ID(), overview.CustomerID)
	suite.Equal("Ana", overview.CustomerName)
	suite.Require().Len(overview.Sales, 1)
	suite.Equal(s.ID(), overview.Sales[0].ID)
	suite.Equal("draft", overview.Sales[0].Status)
	suite.True(overview.Sales[0].IsOpen)
}

func (suite *QueryHandlersTestSuite) TestGetPortalOverview_UnknownToken() {
	query, err := queries.NewGetPortalOverviewQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetPortalOverviewQueryHandler(suite.db, sale.DefaultCutoffHours, time.Now)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetPortalSale_BuildsOrderingForm() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)
	productID := suite.seedProduct(ownerID, "Croissant", 1, 5)

	item, err := sale.NewItem(ana.ID(), productID, 3, suite.money(1), suite.money(5))
	suite.Require().NoError(err)
	s, err := sale.NewSale(kernel.NewUUID(), ownerID, time.Now().Add(7*24*time.Hour), []*sale.Item{item})
	suite.Require().NoError(err)
	suite.addSale(s)

	query, err := queries.NewGetPortalSaleQuery(ana.AccessToken(), s.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetPortalSaleQueryHandler(suite.db, sale.DefaultCutoffHours, time.Now)
	form, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("draft", form.Status)
	suite.True(form.IsOpen)
	suite.Empty(form.Message)
	suite.Equal("Ana", form.CustomerName)
	suite.Require().Len(form.Products, 1)
	suite.Equal("Croissant", form.Products[0].Name)
	suite.Require().Len(form.CurrentOrder, 1)
	suite.Equal(3, form.CurrentOrder[0].Quantity)
	suite.InDelta(15.0, form.CurrentOrder[0].LineTotal, 0.001)
	suite.InDelta(15.0, form.OrderTotal, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetPortalSale_ClosedSaleCarriesMessage() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)

	item, err := sale.NewItem(ana.ID(), kernel.NewUUID(), 1, suite.money(1), suite.money(5))
	suite.Require().NoError(err)
	s, err := sale.NewSale(kernel.NewUUID(), ownerID, time.Now().Add(7*24*time.Hour), []*sale.Item{item})
	suite.Require().NoError(err)
	suite.Require().NoError(s.Close())
	suite.addSale(s)

	query, err := queries.NewGetPortalSaleQuery(ana.AccessToken(), s.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetPortalSaleQueryHandler(suite.db, sale.DefaultCutoffHours, time.Now)
	form, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("closed", form.Status)
	suite.False(form.IsOpen)
	suite.Equal(queries.PortalMessageSaleClosed, form.Message)
}

func (suite *QueryHandlersTestSuite) TestGetPortalDeliveryStatus_ReportsQueuePosition() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)
	bruno := suite.seedCustomer(ownerID, "Bruno", 0)

	s := suite.seedInProgressSale(ownerID, []routeLine{
		{customerID: ana.ID(), quantity: 1, sellPrice: 5},
		{customerID: bruno.ID(), quantity: 1, sellPrice: 5},
	}, []kernel.UUID{ana.ID(), bruno.ID()})

	handler := queries.NewGetPortalDeliveryStatusQueryHandler(suite.db)

	anaQuery, err := queries.NewGetPortalDeliveryStatusQuery(ana.AccessToken(), s.ID())
	suite.Require().NoError(err)
	anaStatus, err := handler.Handle(context.Background(), anaQuery)
	suite.Require().NoError(err)

	suite.Equal("in_progress", anaStatus.SaleStatus)
	suite.Equal("pending", anaStatus.StepStatus)
	suite.True(anaStatus.IsNext)
	suite.Require().NotNil(anaStatus.PositionInQueue)
	suite.Equal(1, *anaStatus.PositionInQueue)
	suite.Require().NotNil(anaStatus.DeliveriesAhead)
	suite.Equal(0, *anaStatus.DeliveriesAhead)
	suite.Require().NotNil(anaStatus.EstimatedMinutes)
	suite.Equal(2, *anaStatus.EstimatedMinutes)

	brunoQuery, err := queries.NewGetPortalDeliveryStatusQuery(bruno.AccessToken(), s.ID())
	suite.Require().NoError(err)
	brunoStatus, err := handler.Handle(context.Background(), brunoQuery)
	suite.Require().NoError(err)

	suite.False(brunoStatus.IsNext)
	suite.Require().NotNil(brunoStatus.PositionInQueue)
	suite.Equal(2, *brunoStatus.PositionInQueue)
	suite.Require().NotNil(brunoStatus.DeliveriesAhead)
	suite.Equal(1, *brunoStatus.DeliveriesAhead)
	suite.Require().NotNil(brunoStatus.EstimatedMinutes)
	suite.Equal(5, *brunoStatus.EstimatedMinutes)
}

func (suite *QueryHandlersTestSuite) TestGetPortalDeliveryStatus_SettledStep() {
	ownerID := kernel.NewUUID()
	ana := suite.seedCustomer(ownerID, "Ana", 0)

	s := suite.seedInProgressSale(ownerID, []routeLine{
		{customerID: ana.ID(), quantity: 1, sellPrice: 5},
	}, []kernel.UUID{ana.ID()})
	suite.Require().NoError(s.CompleteStep(ana.ID(), suite.money(5), suite.money(0), time.Now()))
	suite.updateSale(s)

	query, err := queries.NewGetPortalDeliveryStatusQuery(ana.AccessToken(), s.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetPortalDeliveryStatusQueryHandler(suite.db)
	status, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("completed", status.StepStatus)
	suite.Require().NotNil(status.CompletedAt)
	suite.Require().NotNil(status.AmountCollected)
	suite.InDelta(5.0, *status.AmountCollected, 0.001)
	suite.Nil(status.PositionInQueue)
}

type routeLine struct {
	customerID kernel.UUID
	quantity   int
	sellPrice  float64
}

func (suite *QueryHandlersTestSuite) money(amount float64) kernel.Money {
	m, err := kernel.NewMoneyFromFloat(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *QueryHandlersTestSuite) seedCustomer(ownerID kernel.UUID, name string, credit float64) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), ownerID, name, "+1000", "1 Main St", "")
	suite.Require().NoError(err)
	if credit > 0 {
		c.AddCredit(suite.money(credit))
	}

	uow := suite.uowFactory.Create()
	err = uow.CustomerRepository().Add(context.Background(), c)
	suite.Require().NoError(err)
	return c
}

func (suite *QueryHandlersTestSuite) seedProduct(ownerID kernel.UUID, name string, buy, sell float64) kernel.UUID {
	p, err := product.NewProduct(kernel.NewUUID(), ownerID, name, suite.money(buy), suite.money(sell))
	suite.Require().NoError(err)

	uow := suite.uowFactory.Create()
	err = uow.ProductRepository().Add(context.Background(), p)
	suite.Require().NoError(err)
	return p.ID()
}

func (suite *QueryHandlersTestSuite) seedProvider(ownerID kernel.UUID, name, email string) kernel.UUID {
	p, err := provider.NewProvider(kernel.NewUUID(), ownerID, name, email, "", "")
	suite.Require().NoError(err)

	uow := suite.uowFactory.Create()
	err = uow.ProviderRepository().Add(context.Background(), p)
	suite.Require().NoError(err)
	return p.ID()
}

func (suite *QueryHandlersTestSuite) seedInProgressSale(
	ownerID kernel.UUID,
	lines []routeLine,
	order []kernel.UUID,
) *sale.Sale {
	items := make([]*sale.Item, 0, len(lines))
	for _, line := range lines {
		item, err := sale.NewItem(line.customerID, kernel.NewUUID(), line.quantity, suite.money(1), suite.money(line.sellPrice))
		suite.Require().NoError(err)
		items = append(items, item)
	}

	s, err := sale.NewSale(kernel.NewUUID(), ownerID, time.Now().Add(7*24*time.Hour), items)
	suite.Require().NoError(err)
	suite.Require().NoError(s.Close())
	suite.Require().NoError(s.StartDelivery(order))

	suite.addSale(s)
	return s
}

func (suite *QueryHandlersTestSuite) addSale(s *sale.Sale) {
	uow := suite.uowFactory.Create()
	err := uow.SaleRepository().Add(context.Background(), s)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) updateSale(s *sale.Sale) {
	uow := suite.uowFactory.Create()
	err := uow.SaleRepository().Update(context.Background(), s)
	suite.Require().NoError(err)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
