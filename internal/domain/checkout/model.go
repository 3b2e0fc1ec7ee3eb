package checkout

import (
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/shopspring/decimal"
)

// LineItem is one product line being priced
type LineItem struct {
	ProductID               string          `json:"product_id"`
	Name                    string          `json:"name,omitempty"`
	Image                   string          `json:"image,omitempty"`
	UnitPrice               decimal.Decimal `json:"price"`
	Quantity                int             `json:"quantity"`
	Stock                   int             `json:"stock"`
	SelectedAttributesValue string          `json:"selected_attributes_value,omitempty"`
}

// Subtotal is unit price times quantity, before shipping and discounts
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Discounts maps a product id to the discount applied to that line.
// A missing or nil entry means the line is priced without a discount.
type Discounts map[string]*discount.Discount

// LineQuote is the priced form of a single line
type LineQuote struct {
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	ShippingFee decimal.Decimal
	// BaseAmount is unit price times quantity plus shipping
	BaseAmount decimal.Decimal
	Total      decimal.Decimal
	Discount   *discount.Discount
	// FreeItems is only non-zero for buy-x-get-y lines
	FreeItems int
}

// Quote is the priced form of a checkout set
type Quote struct {
	Lines       []LineQuote
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}
