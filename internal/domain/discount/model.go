package discount

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
	"github.com/shopspring/decimal"
)

// BuyXGetY grants GetFreeQuantity units for every BuyQuantity units bought
type BuyXGetY struct {
	BuyQuantity     int `json:"buyQuantity"`
	GetFreeQuantity int `json:"getFreeQuantity"`
}

// Magnitude is either a scalar amount or a buy/get pair, never both.
// On the wire it is a bare number for scalars and an object for pairs.
type Magnitude struct {
	scalar *decimal.Decimal
	pair   *BuyXGetY
}

// Scalar builds a magnitude for percentage, flash-sale and fixed discounts
func Scalar(value decimal.Decimal) Magnitude {
	return Magnitude{scalar: &value}
}

// Pair builds a magnitude for buy-x-get-y discounts
func Pair(buyQuantity, getFreeQuantity int) Magnitude {
	return Magnitude{pair: &BuyXGetY{BuyQuantity: buyQuantity, GetFreeQuantity: getFreeQuantity}}
}

// Scalar returns the scalar value and whether the magnitude holds one
func (m Magnitude) Scalar() (decimal.Decimal, bool) {
	if m.scalar == nil {
		return decimal.Zero, false
	}
	return *m.scalar, true
}

// Pair returns the buy/get pair and whether the magnitude holds one
func (m Magnitude) Pair() (BuyXGetY, bool) {
	if m.pair == nil {
		return BuyXGetY{}, false
	}
	return *m.pair, true
}

func (m Magnitude) IsEmpty() bool {
	return m.scalar == nil && m.pair == nil
}

func (m Magnitude) MarshalJSON() ([]byte, error) {
	switch {
	case m.pair != nil:
		return json.Marshal(m.pair)
	case m.scalar != nil:
		return []byte(m.scalar.String()), nil
	default:
		return []byte("null"), nil
	}
}

func (m *Magnitude) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*m = Magnitude{}

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '{':
		var pair BuyXGetY
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		m.pair = &pair
		return nil
	default:
		var value decimal.Decimal
		if err := value.UnmarshalJSON(data); err != nil {
			return err
		}
		m.scalar = &value
		return nil
	}
}

// Discount is a pricing rule the shopper attached to one checkout line.
// EndDate and MaxUses are carried for display; eligibility is decided by the
// backend that offered the discount.
type Discount struct {
	ID        string             `json:"_id"`
	Code      string             `json:"code"`
	Kind      types.DiscountKind `json:"type"`
	Magnitude Magnitude          `json:"value"`
	EndDate   *time.Time         `json:"endDate,omitempty"`
	MaxUses   *int               `json:"maxUses,omitempty"`
}

// Validate checks the kind is known and the magnitude has the shape the kind needs
func (d *Discount) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}

	if d.Kind.IsStructured() {
		pair, ok := d.Magnitude.Pair()
		if !ok {
			return ierr.NewErrorf("discount %s of kind %s needs a buy/get pair", d.Code, d.Kind).
				WithHint("Buy X get Y discounts must specify buyQuantity and getFreeQuantity").
				WithReportableDetails(d.details()).
				Mark(ierr.ErrInvalidDiscountConfiguration)
		}
		if pair.BuyQuantity <= 0 {
			return ierr.NewErrorf("discount %s has non-positive buy quantity %d", d.Code, pair.BuyQuantity).
				WithHint("Buy quantity must be greater than zero").
				WithReportableDetails(d.details()).
				Mark(ierr.ErrInvalidDiscountConfiguration)
		}
		if pair.GetFreeQuantity < 0 {
			return ierr.NewErrorf("discount %s has negative free quantity %d", d.Code, pair.GetFreeQuantity).
				WithHint("Free quantity must not be negative").
				WithReportableDetails(d.details()).
				Mark(ierr.ErrInvalidDiscountConfiguration)
		}
		return nil
	}

	value, ok := d.Magnitude.Scalar()
	if !ok {
		return ierr.NewErrorf("discount %s of kind %s needs a scalar value", d.Code, d.Kind).
			WithHintf("%s discounts must specify a single numeric value", d.Kind).
			WithReportableDetails(d.details()).
			Mark(ierr.ErrInvalidDiscountConfiguration)
	}
	if value.IsNegative() {
		return ierr.NewErrorf("discount %s has negative value %s", d.Code, value).
			WithHint("Discount value must not be negative").
			WithReportableDetails(d.details()).
			Mark(ierr.ErrInvalidDiscountConfiguration)
	}
	return nil
}

// Label renders the discount value the way the storefront shows it to shoppers
func (d *Discount) Label() string {
	if pair, ok := d.Magnitude.Pair(); ok {
		return fmt.Sprintf("Buy %d Get %d Free", pair.BuyQuantity, pair.GetFreeQuantity)
	}
	value, _ := d.Magnitude.Scalar()
	if d.Kind.IsRate() {
		return value.String() + "%"
	}
	return value.String()
}

func (d *Discount) details() map[string]any {
	return map[string]any{
		"discount_id": d.ID,
		"code":        d.Code,
		"kind":        string(d.Kind),
	}
}
