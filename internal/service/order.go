package service

import (
	"context"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/order"
	"github.com/openshop/storefront/internal/types"
	"github.com/samber/lo"
)

// OrderService serves the shopper's order history
type OrderService interface {
	ListOrders(ctx context.Context, creds types.Credentials, req dto.ListOrdersRequest) (*dto.ListOrdersResponse, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{
		ServiceParams: params,
	}
}

func (s *orderService) ListOrders(ctx context.Context, creds types.Credentials, req dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	orders, err := s.Storefront.ListOrders(ctx, creds)
	if err != nil {
		return nil, err
	}

	if req.Stage != "" {
		orders = lo.Filter(orders, func(o *order.Order, _ int) bool {
			return o != nil && o.InStage(req.Stage)
		})
	}
	if orders == nil {
		orders = []*order.Order{}
	}

	return &dto.ListOrdersResponse{
		Items: orders,
		Stage: req.Stage,
		Total: len(orders),
	}, nil
}
