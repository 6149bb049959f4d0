package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginalPrice(t *testing.T) {
	t.Run("percent form", func(t *testing.T) {
		original, ok := OriginalPrice(Product{Price: 80, DiscountPercentage: 20})
		assert.True(t, ok)
		assert.InDelta(t, 100, original, 0.01)
	})

	t.Run("fraction form", func(t *testing.T) {
		original, ok := OriginalPrice(Product{Price: 80, DiscountPercentage: 0.2})
		assert.True(t, ok)
		assert.InDelta(t, 100, original, 0.01)
	})

	t.Run("no discount", func(t *testing.T) {
		_, ok := OriginalPrice(Product{Price: 80})
		assert.False(t, ok)
	})

	t.Run("out of range discount", func(t *testing.T) {
		_, ok := OriginalPrice(Product{Price: 80, DiscountPercentage: 150})
		assert.False(t, ok)
	})

	t.Run("full discount has no sensible original", func(t *testing.T) {
		_, ok := OriginalPrice(Product{Price: 80, DiscountPercentage: 100})
		assert.False(t, ok)
	})
}
