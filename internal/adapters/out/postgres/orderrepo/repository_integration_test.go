package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"library/internal/adapters/out/postgres/orderrepo"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"
	"library/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	// Create valid order
	testOrder := suite.createTestOrder()

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order was persisted
	suite.assertOrderCount(1)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Create and add order
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	bookID := kernel.NewUUID()
	dueTime, err := kernel.NewDueDate(time.Now().UTC().Add(7 * 24 * time.Hour))
	suite.Require().NoError(err)

	originalOrder, err := order.NewOrder(id, ownerID, bookID, dueTime, "please hold at front desk")
	suite.Require().NoError(err)

	// Set expectations for Add operation
	suite.tracker.On("TrackAggregate", id, originalOrder).Once()

	err = suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	// Retrieve order
	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	// Verify order details
	suite.Equal(id, retrievedOrder.ID())
	suite.Equal(ownerID, retrievedOrder.OwnerID())
	suite.Equal(bookID, retrievedOrder.BookID())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal("please hold at front desk", retrievedOrder.Comment())
	suite.WithinDuration(dueTime.Time(), retrievedOrder.DueTime().Time(), time.Second)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent order
	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	// Verify error and result
	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_OrderStatusTransitions() {
	testCases := []struct {
		name          string
		initialStatus order.Status
		updatedStatus order.Status
	}{
		{
			name:          "pending to processing",
			initialStatus: order.Pending,
			updatedStatus: order.Processing,
		},
		{
			name:          "processing to fulfilled",
			initialStatus: order.Processing,
			updatedStatus: order.Fulfilled,
		},
		{
			name:          "fulfilled to cancelled",
			initialStatus: order.Fulfilled,
			updatedStatus: order.Cancelled,
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			// Create initial order
			initialOrder := suite.createTestOrderWithStatus(tc.initialStatus)
			suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
			err := suite.repository.Add(ctx, initialOrder)
			suite.Require().NoError(err)

			// Update order status
			updatedOrder, err := order.RestoreOrder(
				initialOrder.ID(),
				initialOrder.OwnerID(),
				initialOrder.BookID(),
				tc.updatedStatus,
				initialOrder.Comment(),
				initialOrder.CreatedTime(),
				initialOrder.DueTime(),
			)
			suite.Require().NoError(err)

			suite.tracker.On("TrackAggregate", updatedOrder.ID(), updatedOrder).Once()
			err = suite.repository.Update(ctx, updatedOrder)
			suite.Require().NoError(err)

			// Retrieve and verify updated order
			retrievedOrder, err := suite.repository.Get(ctx, initialOrder.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.updatedStatus, retrievedOrder.Status())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	// Create order that doesn't exist in database
	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail

	// Try to update non-existent order
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingOrder_RemovesRow() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingPastDue_MixedOrders_ReturnsOnlyOverduePending() {
	ctx := context.Background()

	// Overdue pending order should be returned
	overdue := suite.createOverdueOrderWithStatus(order.Pending)
	// Pending order with a future due time should not
	future := suite.createTestOrder()
	// Overdue order in a non-pending status should not
	overdueFulfilled := suite.createOverdueOrderWithStatus(order.Fulfilled)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))
	suite.Require().NoError(suite.repository.Add(ctx, future))
	suite.Require().NoError(suite.repository.Add(ctx, overdueFulfilled))

	pastDue, err := suite.repository.GetAllPendingPastDue(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(pastDue, 1)
	suite.Equal(overdue.ID(), pastDue[0].ID())
	suite.Equal(order.Pending, pastDue[0].Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingPastDue_NoOverdueOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	future := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", future.ID(), future).Once()
	suite.Require().NoError(suite.repository.Add(ctx, future))

	pastDue, err := suite.repository.GetAllPendingPastDue(ctx)
	suite.Require().NoError(err)
	suite.Empty(pastDue)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				nonExistentOrder := suite.createTestOrder()
				return suite.repository.Update(context.Background(), nonExistentOrder)
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	// Create initial order
	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic pending test order with a future due time.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	id := kernel.NewUUID()
	dueTime, err := kernel.NewDueDate(time.Now().UTC().Add(7 * 24 * time.Hour))
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), dueTime, "")
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates a test order with the specified status.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(status order.Status) *order.Order {
	id := kernel.NewUUID()
	dueTime, err := kernel.NewDueDate(time.Now().UTC().Add(7 * 24 * time.Hour))
	suite.Require().NoError(err)
	testOrder, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(), status, "", time.Now().UTC(), dueTime,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createOverdueOrderWithStatus creates a test order whose due time already passed.
func (suite *OrderRepositoryIntegrationTestSuite) createOverdueOrderWithStatus(status order.Status) *order.Order {
	id := kernel.NewUUID()
	dueTime, err := kernel.RestoreDueDate(time.Now().UTC().Add(-72 * time.Hour))
	suite.Require().NoError(err)
	testOrder, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(), status, "", time.Now().UTC().Add(-96*time.Hour), dueTime,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
