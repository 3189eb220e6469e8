//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestFindOrCreate tests provisioning a user on first contact
func (suite *UserRepositoryTestSuite) TestFindOrCreate() {
	user := suite.factories.User.Create()

	created, err := suite.repo.FindOrCreate(suite.ctx, user)
	suite.Require().NoError(err)
	suite.Equal(user.ID, created.ID)

	again := suite.factories.User.WithEmail(user.Email)
	found, err := suite.repo.FindOrCreate(suite.ctx, again)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID, "the stored row wins over the new candidate")
}

// TestFindOrCreateConcurrent tests that racing first contacts share one row
func (suite *UserRepositoryTestSuite) TestFindOrCreateConcurrent() {
	email := "race@campus.edu"
	ids := make([]uuid.UUID, 8)

	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := suite.repo.FindOrCreate(suite.ctx, suite.factories.User.WithEmail(email))
			if err == nil {
				ids[i] = u.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		suite.Equal(ids[0], id)
	}

	var count int64
	suite.baseTestSuite.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	suite.Equal(int64(1), count)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	_, err := suite.repo.FindOrCreate(suite.ctx, user)
	suite.Require().NoError(err)

	fetched, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.Email, fetched.Email)
	suite.Equal(user.GlobalRole, fetched.GlobalRole)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestGetByEmailNotFound tests retrieving a user by an unknown email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail(suite.ctx, "nobody@campus.edu")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
