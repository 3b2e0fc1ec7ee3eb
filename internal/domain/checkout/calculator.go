package checkout

import (
	"github.com/openshop/storefront/internal/domain/discount"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeLineTotal returns the payable amount for one line, shipping included
// unless the discount replaces the amount outright.
func ComputeLineTotal(item LineItem, d *discount.Discount, shippingFee decimal.Decimal) (decimal.Decimal, error) {
	line, err := PriceLine(item, d, shippingFee)
	if err != nil {
		return decimal.Zero, err
	}
	return line.Total, nil
}

// ComputeOrderTotal sums the line totals of every item, looking each line's
// discount up by product id.
func ComputeOrderTotal(items []LineItem, discounts Discounts, shippingFee decimal.Decimal) (decimal.Decimal, error) {
	quote, err := BuildQuote(items, discounts, shippingFee)
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Total, nil
}

// ComputeSelectedTotal is ComputeOrderTotal over only the selected lines
func ComputeSelectedTotal(items []LineItem, discounts Discounts, shippingFee decimal.Decimal, selection Selection) (decimal.Decimal, error) {
	return ComputeOrderTotal(selection.Filter(items), discounts, shippingFee)
}

// BuildQuote prices every item and returns the per-line breakdown with the grand total
func BuildQuote(items []LineItem, discounts Discounts, shippingFee decimal.Decimal) (*Quote, error) {
	quote := &Quote{
		Lines:       make([]LineQuote, 0, len(items)),
		ShippingFee: shippingFee,
		Total:       decimal.Zero,
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			return nil, ierr.NewErrorf("product %s appears more than once", item.ProductID).
				WithHint("Each product may only appear once in a checkout").
				WithReportableDetails(map[string]any{"product_id": item.ProductID}).
				Mark(ierr.ErrInvalidLineItem)
		}
		seen[item.ProductID] = struct{}{}

		line, err := PriceLine(item, discounts[item.ProductID], shippingFee)
		if err != nil {
			return nil, err
		}
		quote.Lines = append(quote.Lines, line)
		quote.Total = quote.Total.Add(line.Total)
	}

	return quote, nil
}

// PriceLine applies the discount rule to a single line.
//
// percentage and flash-sale take magnitude percent off the shipping-inclusive
// base, fixed subtracts magnitude from it, and buy-x-get-y replaces it with
// (quantity + free items) * unit price, dropping shipping. Free items never
// push the line past stock. The result is clamped at zero.
func PriceLine(item LineItem, d *discount.Discount, shippingFee decimal.Decimal) (LineQuote, error) {
	if err := validateLineItem(item, shippingFee); err != nil {
		return LineQuote{}, err
	}

	base := item.Subtotal().Add(shippingFee)
	line := LineQuote{
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		ShippingFee: shippingFee,
		BaseAmount:  base,
		Total:       base,
	}

	if d == nil {
		return line, nil
	}

	if err := d.Validate(); err != nil {
		return LineQuote{}, ierr.WithError(err).
			WithMessage("discount for product " + item.ProductID).
			Error()
	}
	line.Discount = d

	total := base
	switch d.Kind {
	case types.DiscountKindPercentage, types.DiscountKindFlashSale:
		rate, _ := d.Magnitude.Scalar()
		total = base.Sub(base.Mul(rate).Div(hundred))
	case types.DiscountKindFixed:
		amount, _ := d.Magnitude.Scalar()
		total = base.Sub(amount)
	case types.DiscountKindBuyXGetY:
		pair, _ := d.Magnitude.Pair()
		sets := item.Quantity / pair.BuyQuantity
		freeItems := min(sets*pair.GetFreeQuantity, item.Stock-item.Quantity)
		line.FreeItems = freeItems
		total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity + freeItems)))
	}

	if total.IsNegative() {
		total = decimal.Zero
	}
	line.Total = total

	return line, nil
}

func validateLineItem(item LineItem, shippingFee decimal.Decimal) error {
	var reason string
	switch {
	case item.ProductID == "":
		reason = "product id is required"
	case item.Quantity <= 0:
		reason = "quantity must be greater than zero"
	case item.Stock < 0:
		reason = "stock must not be negative"
	case item.Quantity > item.Stock:
		reason = "quantity exceeds available stock"
	case item.UnitPrice.IsNegative():
		reason = "unit price must not be negative"
	case shippingFee.IsNegative():
		reason = "shipping fee must not be negative"
	default:
		return nil
	}

	return ierr.NewErrorf("invalid line item %s: %s", item.ProductID, reason).
		WithHintf("Invalid cart line: %s", reason).
		WithReportableDetails(map[string]any{
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"stock":      item.Stock,
			"unit_price": item.UnitPrice.String(),
		}).
		Mark(ierr.ErrInvalidLineItem)
}
