package testutil

import (
	"context"
	"time"

	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/validator"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	storefront *InMemoryStorefront
	logger     *logger.Logger
	config     *config.Configuration
	now        time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()
	s.logger = logger.NewNopLogger()
	s.storefront = NewInMemoryStorefront()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.storefront.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStorefront returns the in-memory storefront backend
func (s *BaseServiceTestSuite) GetStorefront() *InMemoryStorefront {
	return s.storefront
}

// GetNow returns the time captured at the start of the test
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
