package branchrepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/branchrepo"
	"tracking/internal/adapters/out/postgres/migrations"
	"tracking/internal/pkg/errs"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BranchRepositoryIntegrationTestSuite verifies branch lookups against the
// reference data seeded by migrations.
type BranchRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *branchrepo.GormBranchRepository
}

func (suite *BranchRepositoryIntegrationTestSuite) SetupSuite() {
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

	sqlDB, err := db.DB()
	suite.Require().NoError(err)

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	suite.Require().NoError(err)
	_, err = provider.Up(ctx)
	suite.Require().NoError(err)

	suite.repository = branchrepo.NewGormBranchRepository(db)
}

func (suite *BranchRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BranchRepositoryIntegrationTestSuite) TestGet_SeededBranch() {
	branch, err := suite.repository.Get(context.Background(), 1)
	suite.Require().NoError(err)

	suite.Equal(int64(1), branch.ID())
	suite.Equal("Phnom Penh Central", branch.Name())
	suite.Require().NotNil(branch.Address())
}

func (suite *BranchRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 99999)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestBranchRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BranchRepositoryIntegrationTestSuite))
}
