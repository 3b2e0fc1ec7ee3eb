package types

import (
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/samber/lo"
)

// PaymentMethod is how the shopper settles an order
type PaymentMethod string

const (
	PaymentMethodPayNow        PaymentMethod = "Pay now"
	PaymentMethodPayOnDelivery PaymentMethod = "Pay on delivery"
)

func (m PaymentMethod) Validate() error {
	allowed := []PaymentMethod{
		PaymentMethodPayNow,
		PaymentMethodPayOnDelivery,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewErrorf("invalid payment method %q", string(m)).
			WithHint("Please select a payment method").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
