package order

import (
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/types"
	"github.com/shopspring/decimal"
)

// Submission is the body POSTed to the backend when the shopper confirms checkout
type Submission struct {
	Reference        string                        `json:"reference"`
	Items            []checkout.LineItem           `json:"items"`
	ShippingAddress  string                        `json:"shippingAddress"`
	PaymentMethod    types.PaymentMethod           `json:"paymentMethod"`
	AppliedDiscounts map[string]*discount.Discount `json:"appliedDiscounts"`
	TotalAmount      decimal.Decimal               `json:"totalAmount"`
	// IdempotencyKey travels as a header, not in the body
	IdempotencyKey string `json:"-"`
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRefused  Status = "refused"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Order is one placed order line as the backend reports it
type Order struct {
	ID              string          `json:"_id"`
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Total           decimal.Decimal `json:"total"`
	DiscountID      string          `json:"discount_id,omitempty"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	CustomerID      string          `json:"customer_id"`
	SellerID        string          `json:"seller_id"`
	OrderStatus     Status          `json:"order_status"`
	ReturnOrder     string          `json:"return_order,omitempty"`
}

// Stage groups orders the way the order history tabs do
type Stage string

const (
	StagePending      Stage = "pending"
	StageInDelivering Stage = "in_delivering"
	StageSuccessful   Stage = "successful"
	StageRefused      Stage = "refused"
)

func (s Stage) IsValid() bool {
	switch s {
	case StagePending, StageInDelivering, StageSuccessful, StageRefused:
		return true
	}
	return false
}

// InStage reports whether the order belongs under the given history tab
func (o *Order) InStage(stage Stage) bool {
	switch stage {
	case StagePending:
		return o.OrderStatus == StatusPending
	case StageInDelivering:
		return o.OrderStatus == StatusAccepted && o.PaymentStatus == PaymentStatusUnpaid
	case StageSuccessful:
		return o.OrderStatus == StatusAccepted && o.PaymentStatus == PaymentStatusPaid
	case StageRefused:
		return o.OrderStatus == StatusRefused || o.ReturnOrder != ""
	default:
		return false
	}
}
