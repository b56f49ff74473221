package productrepo_test

import (
	"context"
	"testing"
	"time"

	"microshop/internal/adapters/out/postgres/productrepo"
	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/product"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for the
// product repository using a PostgreSQL container.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products RESTART IDENTITY").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(name, price, sku string) *product.Product {
	money, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	entity, err := product.NewProduct(name, "test product", money, sku)
	suite.Require().NoError(err)
	return entity
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_AssignsIdentity() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newProduct("Widget", "19.99", "SKU-001"))
	suite.Require().NoError(err)
	suite.Positive(created.ID())
	suite.Equal("Widget", created.Name())
	suite.Equal("19.99", created.Price().String())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByID_RoundTrip() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newProduct("Widget", "19.99", "SKU-001"))
	suite.Require().NoError(err)

	loaded, err := suite.repository.GetByID(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.ID(), loaded.ID())
	suite.Equal("SKU-001", loaded.SKU())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByID(ctx, 12345)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newProduct("Widget", "19.99", "SKU-001"))
	suite.Require().NoError(err)

	newPrice, err := kernel.MoneyFromString("29.99")
	suite.Require().NoError(err)
	suite.Require().NoError(created.Update("Widget v2", "better widget", newPrice, "SKU-002"))
	suite.Require().NoError(suite.repository.Update(ctx, created))

	loaded, err := suite.repository.GetByID(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal("Widget v2", loaded.Name())
	suite.Equal("29.99", loaded.Price().String())
	suite.Equal("SKU-002", loaded.SKU())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_MissingProduct_NotFound() {
	ctx := context.Background()

	price, err := kernel.MoneyFromString("19.99")
	suite.Require().NoError(err)
	detached, err := product.RestoreProduct(9999, "Ghost", "never stored", price, "SKU-404")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, detached)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newProduct("Widget", "19.99", "SKU-001"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, created.ID()))

	_, err = suite.repository.GetByID(ctx, created.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	// deleting again is a no-op
	suite.Require().NoError(suite.repository.Delete(ctx, created.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestExistsBySKU() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newProduct("Widget", "19.99", "SKU-001"))
	suite.Require().NoError(err)

	exists, err := suite.repository.ExistsBySKU(ctx, "SKU-001", 0)
	suite.Require().NoError(err)
	suite.True(exists)

	// the owning product is excluded from the check
	exists, err = suite.repository.ExistsBySKU(ctx, "SKU-001", created.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsBySKU(ctx, "SKU-999", 0)
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
