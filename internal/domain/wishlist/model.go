package wishlist

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Item is a product the shopper saved for later
type Item struct {
	ProductID string          `json:"_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// InStock reports whether the item can be moved to the cart right now
func (i Item) InStock() bool {
	return i.Stock > 0
}

// Find looks up the saved item for a product
func Find(items []Item, productID string) (Item, bool) {
	return lo.Find(items, func(item Item) bool {
		return item.ProductID == productID
	})
}

// Value sums the listed price of every saved item, one unit each
func Value(items []Item) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item Item, _ int) decimal.Decimal {
		return acc.Add(item.Price)
	}, decimal.Zero)
}
