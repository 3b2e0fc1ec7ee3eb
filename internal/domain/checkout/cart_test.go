package checkout

import (
	"testing"

	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotals(t *testing.T) {
	items := []LineItem{
		item("p1", "10", 2, 5),
		item("p2", "2.25", 4, 10),
		item("p3", "99.99", 1, 1),
	}

	assert.True(t, dec("128.99").Equal(Subtotal(items)))
	assert.True(t, dec("108.99").Equal(SelectedSubtotal(items, NewSelection("p2", "p3"))))
	assert.True(t, SelectedSubtotal(items, NewSelection()).IsZero())
	assert.True(t, Subtotal(nil).IsZero())
}

func TestSelectionFilterKeepsOrder(t *testing.T) {
	items := []LineItem{item("a", "1", 1, 1), item("b", "1", 1, 1), item("c", "1", 1, 1)}
	filtered := NewSelection("c", "a").Filter(items)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ProductID)
	assert.Equal(t, "c", filtered[1].ProductID)
}

func TestValidateQuantityChange(t *testing.T) {
	line := item("p1", "10", 2, 5)

	assert.NoError(t, ValidateQuantityChange(line, 1))
	assert.NoError(t, ValidateQuantityChange(line, 5))

	for _, q := range []int{0, -3, 6} {
		err := ValidateQuantityChange(line, q)
		require.Error(t, err)
		assert.True(t, ierr.IsInvalidLineItem(err))
	}
}

func TestCartItemLookup(t *testing.T) {
	cart := &Cart{Items: []LineItem{
		{ProductID: "a", Quantity: 1, Stock: 3},
		{ProductID: "b", Quantity: 2, Stock: 3},
	}}

	item, ok := cart.Item("b")
	assert.True(t, ok)
	assert.Equal(t, 2, item.Quantity)

	_, ok = cart.Item("missing")
	assert.False(t, ok)
}
