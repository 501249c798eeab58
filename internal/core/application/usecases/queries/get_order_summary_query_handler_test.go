package queries_test

import (
	"context"
	"testing"
	"time"

	"pickleshop/internal/adapters/out/postgres/orderrepo"
	"pickleshop/internal/core/application/usecases/queries"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderSummaryQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderSummaryQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsSummary() {
	draft := order.Draft{
		FullName:        "Nimal Perera",
		Province:        "Western",
		District:        "Colombo",
		PostalCode:      "00100",
		AddressLine1:    "12 Temple Road",
		City:            "Dehiwala",
		DeliveryLine1:   "12 Temple Road",
		DeliveryCity:    "Dehiwala",
		SameAsBilling:   true,
		WhatsappNumber:  "+94 77 123 4567",
		PackageSize:     "500 g",
		NumberOfBottles: 2,
	}

	id := kernel.NewUUID()
	testOrder, err := order.NewOrder(id, kernel.NewUUID(), draft)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))

	query, err := queries.NewGetOrderSummaryQuery(id)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(id, result.ID)
	suite.Equal("Nimal Perera", result.FullName)
	suite.Equal("Western", result.Province)
	suite.Equal("Colombo", result.District)
	suite.Equal("00100", result.PostalCode)
	suite.Equal("12 Temple Road", result.DeliveryLine1)
	suite.Equal("Dehiwala", result.DeliveryCity)
	suite.Equal("500 g", result.PackageSize)
	suite.Equal(2, result.NumberOfBottles)
	suite.Equal(1700, result.TotalAmount)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var query queries.GetOrderSummaryQuery

	_, err := suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
}

func TestGetOrderSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSummaryQueryHandlerTestSuite))
}
