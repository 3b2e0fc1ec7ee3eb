package dto

import (
	"github.com/openshop/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductResponse is a catalogue entry with its computed prices
type ProductResponse struct {
	*product.Product `json:",inline"`
	ListPrice        *decimal.Decimal `json:"list_price,omitempty" swaggertype:"string"`
	DisplayPrice     *decimal.Decimal `json:"display_price,omitempty" swaggertype:"string"`
	Available        int              `json:"available"`
}

func NewProductResponse(p *product.Product) *ProductResponse {
	resp := &ProductResponse{Product: p, Available: p.InStock()}
	if price, ok := p.ListPrice(); ok {
		resp.ListPrice = &price
	}
	if price, ok := p.DisplayPrice(); ok {
		resp.DisplayPrice = &price
	}
	return resp
}
