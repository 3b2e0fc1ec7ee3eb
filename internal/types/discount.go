package types

import (
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/samber/lo"
)

// DiscountKind represents the pricing rule a discount applies
type DiscountKind string

const (
	// DiscountKindPercentage takes a percentage off the shipping-inclusive line amount
	DiscountKindPercentage DiscountKind = "percentage"
	// DiscountKindFlashSale is priced exactly like DiscountKindPercentage
	DiscountKindFlashSale DiscountKind = "flash-sale"
	// DiscountKindFixed takes a flat currency amount off the line
	DiscountKindFixed DiscountKind = "fixed"
	// DiscountKindBuyXGetY grants free units for every complete set bought
	DiscountKindBuyXGetY DiscountKind = "buy-x-get-y"
)

var discountKinds = []DiscountKind{
	DiscountKindPercentage,
	DiscountKindFlashSale,
	DiscountKindFixed,
	DiscountKindBuyXGetY,
}

func (k DiscountKind) String() string {
	return string(k)
}

// IsRate reports whether the kind's scalar magnitude is a percentage
func (k DiscountKind) IsRate() bool {
	return k == DiscountKindPercentage || k == DiscountKindFlashSale
}

// IsStructured reports whether the kind expects a buy/get pair instead of a scalar
func (k DiscountKind) IsStructured() bool {
	return k == DiscountKindBuyXGetY
}

func (k DiscountKind) Validate() error {
	if !lo.Contains(discountKinds, k) {
		return ierr.NewErrorf("unsupported discount kind %q", string(k)).
			WithHintf("Discount kind must be one of %v", discountKinds).
			WithReportableDetails(map[string]any{
				"kind":          string(k),
				"allowed_kinds": discountKinds,
			}).
			Mark(ierr.ErrUnsupportedDiscountKind)
	}
	return nil
}
