package product

import (
	"github.com/shopspring/decimal"
)

// Attribute is one purchasable variant of a product, e.g. a size or colour
type Attribute struct {
	Value    string          `json:"attributes_value"`
	Quantity int             `json:"attributes_quantity"`
	Price    decimal.Decimal `json:"attributes_price"`
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type Reviews struct {
	AverageRating      decimal.Decimal `json:"averageRating"`
	TotalReviews       int             `json:"totalReviews"`
	RatingDistribution []RatingCount   `json:"ratingDistribution"`
}

// Product is the catalogue entry served by the storefront backend.
// Products either carry a top-level price and stock or a list of attributes.
type Product struct {
	ID              string           `json:"_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	CountryOfOrigin string           `json:"countryOfOrigin"`
	Brand           string           `json:"brand"`
	Categories      []string         `json:"categories"`
	Tags            []string         `json:"tags"`
	Images          []string         `json:"images"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Stock           *int             `json:"stock,omitempty"`
	AttributesName  string           `json:"attributes_name,omitempty"`
	Attributes      []Attribute      `json:"attributes,omitempty"`
	MaxDiscount     decimal.Decimal  `json:"max_discount"`
	Discounts       []string         `json:"discounts"`
	Reviews         Reviews          `json:"reviews"`
}

// ListPrice is the top-level price, falling back to the first attribute's price
func (p *Product) ListPrice() (decimal.Decimal, bool) {
	if p.Price != nil {
		return *p.Price, true
	}
	if len(p.Attributes) > 0 {
		return p.Attributes[0].Price, true
	}
	return decimal.Zero, false
}

// DisplayPrice is the list price after the product's best advertised discount
func (p *Product) DisplayPrice() (decimal.Decimal, bool) {
	price, ok := p.ListPrice()
	if !ok {
		return decimal.Zero, false
	}

	factor := decimal.NewFromInt(1).Sub(p.MaxDiscount.Div(decimal.NewFromInt(100)))
	discounted := price.Mul(factor)
	if discounted.IsNegative() {
		return decimal.Zero, true
	}
	return discounted, true
}

// InStock reports the stock ceiling across the product or its attributes
func (p *Product) InStock() int {
	if p.Stock != nil {
		return *p.Stock
	}
	total := 0
	for _, a := range p.Attributes {
		total += a.Quantity
	}
	return total
}
