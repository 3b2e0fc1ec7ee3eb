package service

import (
	"github.com/openshop/storefront/internal/config"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/storefront"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger     *logger.Logger
	Config     *config.Configuration
	Storefront storefront.Client
}

// NewServiceParams creates a new ServiceParams
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	storefront storefront.Client,
) ServiceParams {
	return ServiceParams{
		Logger:     logger,
		Config:     config,
		Storefront: storefront,
	}
}
