package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"microshop/internal/adapters/out/postgres/orderrepo"
	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using a PostgreSQL container, with particular focus on the
// optimistic concurrency behavior of Update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) mustItem(productID int64, sku, price string, quantity int) *order.Item {
	money, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	item, err := order.NewItem(productID, sku, money, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewOrderNumber(), "customer-1", []*order.Item{
		suite.mustItem(1, "SKU-001", "10.00", 2),
		suite.mustItem(2, "SKU-002", "5.00", 1),
	})
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderNumber_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)

	suite.True(testOrder.OrderNumber().IsEqual(loaded.OrderNumber()))
	suite.Equal("customer-1", loaded.CustomerID())
	suite.Equal(order.Created, loaded.Status())
	suite.Equal("25.00", loaded.TotalAmount().String())
	suite.Len(loaded.Items(), 2)
	suite.Equal(int64(1), loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderNumber_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByOrderNumber(ctx, kernel.NewOrderNumber())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_IncrementsVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Place())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, reloaded.Status())
	suite.Equal(int64(2), reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesItems() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.RemoveItem(1))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Len(reloaded.Items(), 1)
	suite.Equal("5.00", reloaded.TotalAmount().String())
}

// TestUpdate_ConcurrentWriters verifies the single-winner property: two
// writers load the same version, both mutate, exactly one update commits and
// the loser gets a version conflict without clobbering the winner's write.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentWriters() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	second, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Place())
	suite.Require().NoError(second.Cancel())

	suite.Require().NoError(suite.repository.Update(ctx, first))

	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionConflict)

	reloaded, err := suite.repository.GetByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, reloaded.Status())
	suite.Equal(int64(2), reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllCreatedBefore() {
	ctx := context.Background()

	stale := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	placed := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, placed))
	loaded, err := suite.repository.GetByOrderNumber(ctx, placed.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Place())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// everything inserted so far is older than a future cutoff
	found, err := suite.repository.GetAllCreatedBefore(ctx, time.Now().UTC().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(stale.OrderNumber().IsEqual(found[0].OrderNumber()))

	// nothing is older than a cutoff in the past
	found, err = suite.repository.GetAllCreatedBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(found)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
