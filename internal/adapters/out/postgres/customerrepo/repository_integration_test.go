package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
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

// CustomerRepositoryIntegrationTestSuite verifies customer persistence
// against a real PostgreSQL container.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(name string, document string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, name+"@example.com", document)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ValidCustomer_Success() {
	ctx := context.Background()
	registered := suite.newCustomer("alice", "11122233344")

	suite.tracker.On("TrackAggregate", registered.ID(), registered).Once()

	suite.Require().NoError(suite.repository.Add(ctx, registered))

	var count int64
	suite.Require().NoError(suite.db.Model(&customerrepo.CustomerDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateDocument_Fails() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer("alice", "11122233344")))

	err := suite.repository.Add(ctx, suite.newCustomer("bob", "11122233344"))
	suite.Require().Error(err)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	registered := suite.newCustomer("carol", "55566677788")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, registered))

	loaded, err := suite.repository.Get(ctx, registered.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(registered.ID()))
	suite.Equal("carol", loaded.Name())
	suite.Equal("carol@example.com", loaded.Email())
	suite.Equal("55566677788", loaded.Document())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByDocument_FindsCustomer() {
	ctx := context.Background()
	registered := suite.newCustomer("dave", "99988877766")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, registered))

	loaded, err := suite.repository.GetByDocument(ctx, "99988877766")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(registered.ID()))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByDocument_NotFound() {
	_, err := suite.repository.GetByDocument(context.Background(), "00000000000")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_SortsByName() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer("zoe", "11111111111")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer("adam", "22222222222")))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("adam", all[0].Name())
	suite.Equal("zoe", all[1].Name())
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
