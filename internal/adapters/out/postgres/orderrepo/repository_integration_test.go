package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres/orderrepo"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormOrderRepositoryTestSuite exercises order persistence against a real
// PostgreSQL database, including the line item association and the refund
// columns.
type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) newOrder(customerID kernel.UUID,
	createdAt time.Time) *order.Order {
	item1, err := order.NewItem(kernel.NewUUID(), 2, decimal.NewFromInt(120))
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(60))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID,
		[]order.Item{item1, item2}, decimal.NewFromInt(300),
		kernel.NewUUID().String(), "data:image/png;base64,QR", "5 Lakeview Drive",
		order.PaymentModeOnline, order.PaymentStatusPaid, createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	testOrder := suite.newOrder(customerID, time.Now().UTC())

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(customerID, retrieved.CustomerID())
	suite.Equal(order.StatusPending, retrieved.Status())
	suite.Equal(testOrder.TrackingID(), retrieved.TrackingID())
	suite.Equal(testOrder.QRCodePayload(), retrieved.QRCodePayload())
	suite.Equal("5 Lakeview Drive", retrieved.ShippingAddress())
	suite.Equal(order.PaymentModeOnline, retrieved.PaymentMode())
	suite.Equal(order.PaymentStatusPaid, retrieved.PaymentStatus())
	suite.True(retrieved.TotalAmount().Equal(decimal.NewFromInt(300)))
	suite.Len(retrieved.Items(), 2)
	suite.Nil(retrieved.Refund())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsLifecycleAndRefund() {
	ctx := context.Background()
	testOrder := suite.newOrder(kernel.NewUUID(), time.Now().UTC())

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = testOrder.Cancel()
	suite.Require().NoError(err)

	refund, err := order.NewRefund("REF-1001", testOrder.TotalAmount(), time.Now().UTC())
	suite.Require().NoError(err)
	err = testOrder.ApplyRefund(refund)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCancelled, retrieved.Status())
	suite.Equal(order.PaymentStatusRefunded, retrieved.PaymentStatus())
	suite.Require().NotNil(retrieved.Refund())
	suite.Equal("REF-1001", retrieved.Refund().RefundID())
	suite.True(retrieved.Refund().Amount().Equal(testOrder.TotalAmount()))
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsDriverAssignment() {
	ctx := context.Background()
	testOrder := suite.newOrder(kernel.NewUUID(), time.Now().UTC())
	driverID := kernel.NewUUID()

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = testOrder.AssignDriver(driverID)
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusShipped, retrieved.Status())
	suite.Require().NotNil(retrieved.AssignedDriverID())
	suite.Equal(driverID, *retrieved.AssignedDriverID())
	suite.True(retrieved.IsAssignedTo(driverID))
}

func (suite *GormOrderRepositoryTestSuite) TestGetByTrackingID() {
	ctx := context.Background()
	testOrder := suite.newOrder(kernel.NewUUID(), time.Now().UTC())

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByTrackingID(ctx, testOrder.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	_, err = suite.repo.GetByTrackingID(ctx, "no-such-tracking")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestGetByCustomer_ReturnsOnlyOwnOrdersNewestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	older := suite.newOrder(customerID, time.Now().UTC().Add(-2*time.Hour))
	newer := suite.newOrder(customerID, time.Now().UTC())
	foreign := suite.newOrder(kernel.NewUUID(), time.Now().UTC())

	for _, o := range []*order.Order{older, newer, foreign} {
		err := suite.repo.Add(ctx, o)
		suite.Require().NoError(err)
	}

	orders, err := suite.repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(newer.ID(), orders[0].ID())
	suite.Equal(older.ID(), orders[1].ID())
}

func (suite *GormOrderRepositoryTestSuite) TestGetPendingOlderThan() {
	ctx := context.Background()

	stale := suite.newOrder(kernel.NewUUID(), time.Now().UTC().Add(-48*time.Hour))
	fresh := suite.newOrder(kernel.NewUUID(), time.Now().UTC())
	shipped := suite.newOrder(kernel.NewUUID(), time.Now().UTC().Add(-48*time.Hour))
	_, err := shipped.AssignDriver(kernel.NewUUID())
	suite.Require().NoError(err)

	for _, o := range []*order.Order{stale, fresh, shipped} {
		err = suite.repo.Add(ctx, o)
		suite.Require().NoError(err)
	}

	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	orders, err := suite.repo.GetPendingOlderThan(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(stale.ID(), orders[0].ID())
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
