package dto

import (
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/types"
	"github.com/openshop/storefront/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one product line submitted for pricing.
// Quantity and stock are checked by the calculator, not here.
type LineItemRequest struct {
	ProductID               string          `json:"product_id" validate:"required"`
	Name                    string          `json:"name,omitempty"`
	Image                   string          `json:"image,omitempty"`
	Price                   decimal.Decimal `json:"price" swaggertype:"string"`
	Quantity                int             `json:"quantity"`
	Stock                   int             `json:"stock"`
	SelectedAttributesValue string          `json:"selected_attributes_value,omitempty"`
}

func (r LineItemRequest) ToLineItem() checkout.LineItem {
	return checkout.LineItem{
		ProductID:               r.ProductID,
		Name:                    r.Name,
		Image:                   r.Image,
		UnitPrice:               r.Price,
		Quantity:                r.Quantity,
		Stock:                   r.Stock,
		SelectedAttributesValue: r.SelectedAttributesValue,
	}
}

func toLineItems(items []LineItemRequest) []checkout.LineItem {
	return lo.Map(items, func(item LineItemRequest, _ int) checkout.LineItem {
		return item.ToLineItem()
	})
}

// QuoteRequest prices a checkout set.
// SelectedProductIDs restricts the quote to those lines when present.
// ShippingFee overrides the configured per-line fee for previews.
type QuoteRequest struct {
	Items              []LineItemRequest             `json:"items" validate:"dive"`
	AppliedDiscounts   map[string]*discount.Discount `json:"applied_discounts,omitempty"`
	SelectedProductIDs []string                      `json:"selected_product_ids,omitempty"`
	ShippingFee        *decimal.Decimal              `json:"shipping_fee,omitempty" swaggertype:"string"`
}

func (r *QuoteRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *QuoteRequest) LineItems() []checkout.LineItem {
	return toLineItems(r.Items)
}

// Selection returns the requested subset, or false when every line is priced
func (r *QuoteRequest) Selection() (checkout.Selection, bool) {
	if r.SelectedProductIDs == nil {
		return nil, false
	}
	return checkout.NewSelection(r.SelectedProductIDs...), true
}

// LineQuoteResponse is one priced line
type LineQuoteResponse struct {
	ProductID   string            `json:"product_id"`
	Quantity    int               `json:"quantity"`
	UnitPrice   decimal.Decimal   `json:"unit_price" swaggertype:"string"`
	ShippingFee decimal.Decimal   `json:"shipping_fee" swaggertype:"string"`
	BaseAmount  decimal.Decimal   `json:"base_amount" swaggertype:"string"`
	Total       decimal.Decimal   `json:"total" swaggertype:"string"`
	FreeItems   int               `json:"free_items,omitempty"`
	Discount    *DiscountResponse `json:"discount,omitempty"`
}

// QuoteResponse is the priced checkout set
type QuoteResponse struct {
	ID          string               `json:"id"`
	Lines       []*LineQuoteResponse `json:"lines"`
	ShippingFee decimal.Decimal      `json:"shipping_fee" swaggertype:"string"`
	Subtotal    decimal.Decimal      `json:"subtotal" swaggertype:"string"`
	Total       decimal.Decimal      `json:"total" swaggertype:"string"`
}

func NewQuoteResponse(id string, items []checkout.LineItem, q *checkout.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID: id,
		Lines: lo.Map(q.Lines, func(l checkout.LineQuote, _ int) *LineQuoteResponse {
			return &LineQuoteResponse{
				ProductID:   l.ProductID,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				ShippingFee: l.ShippingFee,
				BaseAmount:  l.BaseAmount,
				Total:       l.Total,
				FreeItems:   l.FreeItems,
				Discount:    NewDiscountResponse(l.Discount),
			}
		}),
		ShippingFee: q.ShippingFee,
		Subtotal:    checkout.Subtotal(items),
		Total:       q.Total,
	}
}

// PlaceOrderRequest confirms a checkout set as an order
type PlaceOrderRequest struct {
	Items            []LineItemRequest             `json:"items" validate:"required,min=1,dive"`
	AppliedDiscounts map[string]*discount.Discount `json:"applied_discounts,omitempty"`
	ShippingAddress  string                        `json:"shipping_address" validate:"required,max=500"`
	PaymentMethod    types.PaymentMethod           `json:"payment_method" validate:"required"`
}

func (r *PlaceOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PaymentMethod.Validate()
}

func (r *PlaceOrderRequest) LineItems() []checkout.LineItem {
	return toLineItems(r.Items)
}

// PlaceOrderResponse echoes the submitted order
type PlaceOrderResponse struct {
	Reference   string          `json:"reference"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
	Quote       *QuoteResponse  `json:"quote"`
}
