package dto

import (
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/validator"
)

// DiscountResponse represents a discount offered or applied to a line
type DiscountResponse struct {
	*discount.Discount `json:",inline"`
	Label              string `json:"label"`
}

func NewDiscountResponse(d *discount.Discount) *DiscountResponse {
	if d == nil {
		return nil
	}
	return &DiscountResponse{Discount: d, Label: d.Label()}
}

// ListDiscountCandidatesRequest lists the products to fetch offers for
type ListDiscountCandidatesRequest struct {
	ProductIDs []string `form:"product_id" validate:"required,min=1,max=50,dive,required"`
}

func (r *ListDiscountCandidatesRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ListDiscountCandidatesResponse holds the offers available per product id
type ListDiscountCandidatesResponse struct {
	Discounts map[string][]*DiscountResponse `json:"discounts"`
}
