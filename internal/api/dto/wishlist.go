package dto

import (
	"github.com/openshop/storefront/internal/domain/wishlist"
	"github.com/shopspring/decimal"
)

// WishlistResponse lists the shopper's saved products
type WishlistResponse struct {
	Items []wishlist.Item `json:"items"`
	Total int             `json:"total"`
	// Value is the combined listed price of one of each saved item
	Value decimal.Decimal `json:"value" swaggertype:"string"`
}

func NewWishlistResponse(items []wishlist.Item) *WishlistResponse {
	if items == nil {
		items = []wishlist.Item{}
	}
	return &WishlistResponse{
		Items: items,
		Total: len(items),
		Value: wishlist.Value(items),
	}
}
