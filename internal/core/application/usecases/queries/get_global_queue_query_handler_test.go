package queries_test

import (
	"context"
	"testing"
	"time"

	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetGlobalQueueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetGlobalQueueQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetGlobalQueueQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetGlobalQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_WithOrders_ReturnsQueueOrderedByPosition() {
	first := suite.createQueuedOrder(1, 40)
	second := suite.createQueuedOrder(2, 60)
	third := suite.createQueuedOrder(3, 25)

	// Insert out of order so the ranking comes from the query, not insertion order
	suite.saveOrders(third, first, second)

	query := queries.NewGetGlobalQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(1, result[0].Position)
	suite.Equal(40, result[0].TotalQuantity)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(2, result[1].Position)
	suite.Equal(60, result[1].TotalQuantity)

	suite.Equal(third.ID(), result[2].ID)
	suite.Equal(3, result[2].Position)
	suite.Equal(25, result[2].TotalQuantity)
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_RushOrder_CarriesFlagAndTimestamp() {
	rushAt := time.Now().UTC()

	rushOrder := suite.createQueuedOrder(1, 30)
	suite.Require().NoError(rushOrder.MarkRush(rushAt))

	regularOrder := suite.createQueuedOrder(2, 30)

	suite.saveOrders(rushOrder, regularOrder)

	query := queries.NewGetGlobalQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].Rush)
	suite.Require().NotNil(result[0].RushSetAt)
	suite.WithinDuration(rushAt, *result[0].RushSetAt, time.Second)

	suite.False(result[1].Rush)
	suite.Nil(result[1].RushSetAt)
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_PartiallyShippedOrder_ReportsShippedQuantity() {
	partialOrder := suite.createQueuedOrder(1, 50)
	suite.Require().NoError(partialOrder.RecordShipment(20))

	suite.saveOrders(partialOrder)

	query := queries.NewGetGlobalQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(50, result[0].TotalQuantity)
	suite.Equal(20, result[0].ShippedQuantity)
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_ShippedOrders_AreExcluded() {
	activeOrder := suite.createQueuedOrder(1, 50)

	shippedOrder, err := order.RestoreOrder(
		kernel.NewUUID(), 50, 50, true, true, false, false, nil, nil, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	suite.saveOrders(activeOrder, shippedOrder)

	query := queries.NewGetGlobalQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(activeOrder.ID(), result[0].ID)
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetGlobalQueueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetGlobalQueueQuery constructor")
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	for i := 1; i <= 10; i++ {
		suite.saveOrders(suite.createQueuedOrder(i, 10))
	}

	query := queries.NewGetGlobalQueueQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// createQueuedOrder creates an active order holding the given global queue position.
func (suite *GetGlobalQueueQueryHandlerTestSuite) createQueuedOrder(position int, totalQuantity int) *order.Order {
	queuedOrder, err := order.NewOrder(kernel.NewUUID(), totalQuantity, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(queuedOrder.AssignGlobalPosition(position))
	return queuedOrder
}

func (suite *GetGlobalQueueQueryHandlerTestSuite) saveOrders(orders ...*order.Order) {
	for _, o := range orders {
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	}
}

func TestGetGlobalQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetGlobalQueueQueryHandlerTestSuite))
}

// mockAggregateTracker implements the aggregate tracker for test purposes.
// It's a no-op implementation since query tests don't need aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
