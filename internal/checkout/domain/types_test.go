package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{}, Summarize([]PricedItem{}))
}

func TestSummarizeTotals(t *testing.T) {
	items := []PricedItem{
		{Price: 19.99, Quantity: 2},
		{Price: 5.50, Quantity: 1},
	}
	s := Summarize(items)

	assert.InDelta(t, 45.48, s.Subtotal, 1e-9)
	assert.InDelta(t, s.Subtotal*0.10, s.Tax, 1e-9)
	assert.InDelta(t, 10, s.Shipping, 1e-9)
	assert.InDelta(t, s.Subtotal+s.Tax+s.Shipping, s.Total, 1e-9)
}

func TestShippingBoundaryIsStrict(t *testing.T) {
	// subtotal == 100 still pays shipping
	at := Summarize([]PricedItem{{Price: 50, Quantity: 2}})
	assert.Equal(t, 10.0, at.Shipping)
	assert.InDelta(t, 120, at.Total, 1e-9)

	// subtotal == 100.01 ships free
	over := Summarize([]PricedItem{{Price: 100.01, Quantity: 1}})
	assert.Equal(t, 0.0, over.Shipping)
}

func TestSummarizeInvariantHoldsForVariedCarts(t *testing.T) {
	carts := [][]PricedItem{
		{{Price: 0.01, Quantity: 1}},
		{{Price: 33.33, Quantity: 3}},
		{{Price: 250, Quantity: 1}, {Price: 0.99, Quantity: 7}},
		{{Price: 12.49, Quantity: 2}, {Price: 80.00, Quantity: 1}},
	}
	for _, items := range carts {
		s := Summarize(items)
		assert.InDelta(t, s.Subtotal+s.Tax+s.Shipping, s.Total, 1e-9)
		assert.InDelta(t, Round2(s.Subtotal*0.10), Round2(s.Tax), 1e-9)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 100.0, Round2(99.999))
}
