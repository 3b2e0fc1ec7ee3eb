package service

import (
	"context"

	"github.com/openshop/storefront/internal/api/dto"
)

type ProductService interface {
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		ServiceParams: params,
	}
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.Storefront.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(p), nil
}
