package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/postgres/paymentrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type PaymentRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *paymentrepo.GormPaymentRepository
}

func (suite *PaymentRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.repo = paymentrepo.NewGormPaymentRepository(db, noopTracker{})
}

func (suite *PaymentRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PaymentRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE payments CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *PaymentRepositoryTestSuite) newSettledPayment(orderID kernel.UUID, transactionID string) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, 500, payment.MethodCreditCard, transactionID)
	suite.Require().NoError(err)
	suite.Require().NoError(p.MarkSucceeded())
	return p
}

func (suite *PaymentRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newSettledPayment(kernel.NewUUID(), "TXN-roundtrip")

	suite.Require().NoError(suite.repo.Add(ctx, p))

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.OrderID().IsEqual(p.OrderID()))
	suite.Equal(500, loaded.Amount())
	suite.Equal(payment.MethodCreditCard, loaded.Method())
	suite.Equal(payment.StatusSuccess, loaded.Status())
	suite.Equal("TXN-roundtrip", loaded.TransactionID())
}

func (suite *PaymentRepositoryTestSuite) TestAdd_SecondPaymentForOrderRejected() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first := suite.newSettledPayment(orderID, "TXN-first")
	suite.Require().NoError(suite.repo.Add(ctx, first))

	second := suite.newSettledPayment(orderID, "TXN-second")
	err := suite.repo.Add(ctx, second)
	suite.Require().ErrorIs(err, payment.ErrPaymentAlreadyExists)
}

func (suite *PaymentRepositoryTestSuite) TestAdd_FailedPaymentIsRetained() {
	ctx := context.Background()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 501, payment.MethodCash, "TXN-declined")
	suite.Require().NoError(err)
	suite.Require().NoError(p.MarkFailed())

	suite.Require().NoError(suite.repo.Add(ctx, p))

	loaded, err := suite.repo.GetByOrderID(ctx, p.OrderID())
	suite.Require().NoError(err)
	suite.Equal(payment.StatusFailed, loaded.Status())
}

func (suite *PaymentRepositoryTestSuite) TestGetByTransactionID() {
	ctx := context.Background()
	p := suite.newSettledPayment(kernel.NewUUID(), "TXN-lookup")
	suite.Require().NoError(suite.repo.Add(ctx, p))

	loaded, err := suite.repo.GetByTransactionID(ctx, "TXN-lookup")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(p.ID()))

	_, err = suite.repo.GetByTransactionID(ctx, "TXN-missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryTestSuite) TestGetByOrderID_NotFound() {
	_, err := suite.repo.GetByOrderID(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPaymentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryTestSuite))
}
