package service

import (
	"context"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/wishlist"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
)

// WishlistService reads and prunes the products a shopper saved for later
type WishlistService interface {
	GetWishlist(ctx context.Context, creds types.Credentials) (*dto.WishlistResponse, error)
	RemoveItem(ctx context.Context, creds types.Credentials, productID string) (*dto.WishlistResponse, error)
	ClearWishlist(ctx context.Context, creds types.Credentials) (*dto.SuccessResponse, error)
}

type wishlistService struct {
	ServiceParams
}

func NewWishlistService(params ServiceParams) WishlistService {
	return &wishlistService{
		ServiceParams: params,
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, creds types.Credentials) (*dto.WishlistResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	items, err := s.Storefront.ListWishlist(ctx, creds)
	if err != nil {
		return nil, err
	}
	return dto.NewWishlistResponse(items), nil
}

// RemoveItem drops one saved product and returns what is left
func (s *wishlistService) RemoveItem(ctx context.Context, creds types.Credentials, productID string) (*dto.WishlistResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	items, err := s.Storefront.ListWishlist(ctx, creds)
	if err != nil {
		return nil, err
	}

	if _, ok := wishlist.Find(items, productID); !ok {
		return nil, ierr.NewErrorf("product %s is not in the wishlist", productID).
			WithHint("The product is not in your wishlist").
			WithReportableDetails(map[string]any{"product_id": productID}).
			Mark(ierr.ErrNotFound)
	}

	if err := s.Storefront.RemoveWishlistItem(ctx, creds, productID); err != nil {
		return nil, err
	}

	s.Logger.Debugw("removed wishlist item", "product_id", productID)

	return s.GetWishlist(ctx, creds)
}

func (s *wishlistService) ClearWishlist(ctx context.Context, creds types.Credentials) (*dto.SuccessResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	if err := s.Storefront.ClearWishlist(ctx, creds); err != nil {
		return nil, err
	}
	return &dto.SuccessResponse{Message: "wishlist cleared"}, nil
}
