package dto

import (
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/validator"
	"github.com/shopspring/decimal"
)

// CartResponse is the shopper's cart with running subtotals
type CartResponse struct {
	ID                 string              `json:"id"`
	CustomerID         string              `json:"customer_id"`
	Items              []checkout.LineItem `json:"items"`
	SelectedProductIDs []string            `json:"selected_product_ids"`
	Subtotal           decimal.Decimal     `json:"subtotal" swaggertype:"string"`
	SelectedSubtotal   decimal.Decimal     `json:"selected_subtotal" swaggertype:"string"`
}

func NewCartResponse(cart *checkout.Cart, selected []string) *CartResponse {
	selection := checkout.NewSelection(selected...)
	items := cart.Items
	if items == nil {
		items = []checkout.LineItem{}
	}
	if selected == nil {
		selected = []string{}
	}
	return &CartResponse{
		ID:                 cart.ID,
		CustomerID:         cart.CustomerID,
		Items:              items,
		SelectedProductIDs: selected,
		Subtotal:           checkout.Subtotal(items),
		SelectedSubtotal:   checkout.SelectedSubtotal(items, selection),
	}
}

// UpdateCartItemRequest sets a new quantity for one cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// StartCheckoutRequest picks the cart lines to take to checkout
type StartCheckoutRequest struct {
	SelectedProductIDs []string `json:"selected_product_ids" validate:"required,min=1,dive,required"`
}

func (r *StartCheckoutRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// StartCheckoutResponse is the checkout set built from the selected cart lines
type StartCheckoutResponse struct {
	Items       []checkout.LineItem `json:"items"`
	Subtotal    decimal.Decimal     `json:"subtotal" swaggertype:"string"`
	ShippingFee decimal.Decimal     `json:"shipping_fee" swaggertype:"string"`
	Total       decimal.Decimal     `json:"total" swaggertype:"string"`
}
