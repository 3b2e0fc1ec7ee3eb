package checkout

import (
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Cart is the shopper's basket as the backend stores it
type Cart struct {
	ID         string     `json:"_id"`
	CustomerID string     `json:"customer_id"`
	Items      []LineItem `json:"items"`
}

// Item looks up the line for a product
func (c *Cart) Item(productID string) (LineItem, bool) {
	return lo.Find(c.Items, func(item LineItem) bool {
		return item.ProductID == productID
	})
}

// Selection is the set of product ids the shopper ticked for checkout
type Selection map[string]struct{}

func NewSelection(productIDs ...string) Selection {
	return lo.Associate(productIDs, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
}

func (s Selection) Contains(productID string) bool {
	_, ok := s[productID]
	return ok
}

func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Filter keeps the items whose product id is selected, preserving order
func (s Selection) Filter(items []LineItem) []LineItem {
	return lo.Filter(items, func(item LineItem, _ int) bool {
		return s.Contains(item.ProductID)
	})
}

// Subtotal sums unit price times quantity across items, without shipping or discounts
func Subtotal(items []LineItem) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item LineItem, _ int) decimal.Decimal {
		return acc.Add(item.Subtotal())
	}, decimal.Zero)
}

// SelectedSubtotal is Subtotal over the selected items only
func SelectedSubtotal(items []LineItem, selection Selection) decimal.Decimal {
	return Subtotal(selection.Filter(items))
}

// ValidateQuantityChange checks a new cart quantity stays within one and the line's stock
func ValidateQuantityChange(item LineItem, newQuantity int) error {
	if newQuantity < 1 || newQuantity > item.Stock {
		return ierr.NewErrorf("quantity %d out of range for product %s", newQuantity, item.ProductID).
			WithHintf("Quantity must be between 1 and %d", item.Stock).
			WithReportableDetails(map[string]any{
				"product_id": item.ProductID,
				"quantity":   newQuantity,
				"stock":      item.Stock,
			}).
			Mark(ierr.ErrInvalidLineItem)
	}
	return nil
}
