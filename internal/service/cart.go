package service

import (
	"context"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/checkout"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
)

// CartService reads and edits the shopper's cart and builds checkout sets from it
type CartService interface {
	GetCart(ctx context.Context, creds types.Credentials, selected []string) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, creds types.Credentials, productID string, req dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	ClearCart(ctx context.Context, creds types.Credentials) (*dto.CartResponse, error)
	StartCheckout(ctx context.Context, creds types.Credentials, req dto.StartCheckoutRequest) (*dto.StartCheckoutResponse, error)
}

type cartService struct {
	ServiceParams
}

func NewCartService(params ServiceParams) CartService {
	return &cartService{
		ServiceParams: params,
	}
}

func (s *cartService) GetCart(ctx context.Context, creds types.Credentials, selected []string) (*dto.CartResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	cart, err := s.Storefront.GetCart(ctx, creds)
	if err != nil {
		return nil, err
	}
	return dto.NewCartResponse(cart, selected), nil
}

// UpdateQuantity checks the new quantity against the line's stock before asking
// the backend, then returns the refreshed cart
func (s *cartService) UpdateQuantity(ctx context.Context, creds types.Credentials, productID string, req dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	cart, err := s.Storefront.GetCart(ctx, creds)
	if err != nil {
		return nil, err
	}

	item, ok := cart.Item(productID)
	if !ok {
		return nil, ierr.NewErrorf("product %s is not in the cart", productID).
			WithHint("The product is not in your cart").
			WithReportableDetails(map[string]any{"product_id": productID}).
			Mark(ierr.ErrNotFound)
	}

	if err := checkout.ValidateQuantityChange(item, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.Storefront.UpdateCartQuantity(ctx, creds, productID, req.Quantity); err != nil {
		return nil, err
	}

	s.Logger.Debugw("updated cart quantity",
		"product_id", productID,
		"from", item.Quantity,
		"to", req.Quantity)

	return s.GetCart(ctx, creds, nil)
}

func (s *cartService) ClearCart(ctx context.Context, creds types.Credentials) (*dto.CartResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	if err := s.Storefront.ClearCart(ctx, creds); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, creds, nil)
}

// StartCheckout turns the selected cart lines into a checkout set priced
// without discounts; discounts are attached later at checkout
func (s *cartService) StartCheckout(ctx context.Context, creds types.Credentials, req dto.StartCheckoutRequest) (*dto.StartCheckoutResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.Storefront.GetCart(ctx, creds)
	if err != nil {
		return nil, err
	}

	selection := checkout.NewSelection(req.SelectedProductIDs...)
	items := selection.Filter(cart.Items)
	if len(items) == 0 {
		return nil, ierr.NewError("none of the selected products are in the cart").
			WithHint("Please select at least one item from your cart").
			WithReportableDetails(map[string]any{"selected_product_ids": req.SelectedProductIDs}).
			Mark(ierr.ErrValidation)
	}

	shippingFee := s.Config.Checkout.ShippingFee
	total, err := checkout.ComputeSelectedTotal(cart.Items, nil, shippingFee, selection)
	if err != nil {
		return nil, err
	}

	return &dto.StartCheckoutResponse{
		Items:       items,
		Subtotal:    checkout.Subtotal(items),
		ShippingFee: shippingFee,
		Total:       total,
	}, nil
}
