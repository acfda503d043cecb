package productrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/productrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite verifies catalog persistence against
// a real PostgreSQL container.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
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
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(name string, productType product.Type, price string) *product.Product {
	money, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, "A menu favorite", productType, money)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_Success() {
	ctx := context.Background()
	entry := suite.newProduct("Cheeseburger", product.TypeSnack, "9.90")

	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	var count int64
	suite.Require().NoError(suite.db.Model(&productrepo.ProductDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	entry := suite.newProduct("Vanilla Shake", product.TypeDrink, "7.50")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	loaded, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(entry.ID()))
	suite.Equal("Vanilla Shake", loaded.Name())
	suite.Equal("A menu favorite", loaded.Description())
	suite.Equal(product.TypeDrink, loaded.Type())
	suite.Equal("7.50", loaded.Price().String())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllByType_FiltersAndSortsByName() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newProduct("Fries", product.TypeSide, "4.00")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newProduct("Coleslaw", product.TypeSide, "3.50")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newProduct("Cola", product.TypeDrink, "3.00")))

	sides, err := suite.repository.GetAllByType(ctx, product.TypeSide)
	suite.Require().NoError(err)
	suite.Require().Len(sides, 2)
	suite.Equal("Coleslaw", sides[0].Name())
	suite.Equal("Fries", sides[1].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllByType_EmptyCategory() {
	desserts, err := suite.repository.GetAllByType(context.Background(), product.TypeDessert)
	suite.Require().NoError(err)
	suite.Empty(desserts)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
