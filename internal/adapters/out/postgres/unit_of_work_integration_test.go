package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/migrations"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then runs the goose migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	sqlDB, err := db.DB()
	suite.Require().NoError(err)

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	suite.Require().NoError(err)
	_, err = provider.Up(ctx)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean shipment state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment(code string) *shipment.Shipment {
	trackingCode, err := kernel.NewTrackingCode(code)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		trackingCode,
		"Sok Dara", "+855 12 345 678",
		"Chan Lina", "+855 98 765 432",
		1, 2,
		nil,
		time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) countShipments() int64 {
	var count int64
	suite.Require().NoError(suite.db.Table("shipments").Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	aggregate := suite.newShipment("KH-20260829-4F21AC")
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countShipments())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	aggregate := suite.newShipment("KH-20260829-AAAAAA")
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countShipments())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBranchAndShipmentShareTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	branch, err := uow.BranchRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("Phnom Penh Central", branch.Name())

	aggregate := suite.newShipment("KH-20260829-B0B0B0")
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().ShipmentRepository().
		GetByTrackingCode(ctx, aggregate.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(shipment.Pending, loaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBranchLookup_NotFound() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.BranchRepository().Get(ctx, 99999)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
