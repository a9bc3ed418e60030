package service_test

import (
	"context"
	"testing"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvents(
	ctx context.Context, evts []domain.ShopperEvent,
) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

func newCarts(t *testing.T) (*service.Carts, *MockEventsProducer) {
	t.Helper()
	producer := new(MockEventsProducer)
	producer.On("ProduceEvents", mock.Anything, mock.Anything).
		Return(nil).Maybe()
	return service.NewCarts(seedRepo(), producer), producer
}

func TestCartsAddLine(t *testing.T) {
	t.Run("MergeOnAdd", func(t *testing.T) {
		s, _ := newCarts(t)

		line := domain.CartLine{ProductID: "1", Size: "L", Color: "Black", Quantity: 1}
		require.NoError(t, s.AddLine(t.Context(), "sess", line))
		require.NoError(t, s.AddLine(t.Context(), "sess", line))

		c := s.Cart("sess")
		require.Len(t, c.Lines, 1)
		assert.Equal(t, 2, c.Lines[0].Quantity)
	})

	t.Run("SessionsIsolated", func(t *testing.T) {
		s, _ := newCarts(t)

		line := domain.CartLine{ProductID: "1", Size: "L", Color: "Black", Quantity: 1}
		require.NoError(t, s.AddLine(t.Context(), "a", line))

		assert.Len(t, s.Cart("a").Lines, 1)
		assert.Empty(t, s.Cart("b").Lines)
	})

	t.Run("EmitsAddedEvent", func(t *testing.T) {
		producer := new(MockEventsProducer)
		producer.On("ProduceEvents", mock.Anything, mock.MatchedBy(
			func(evts []domain.ShopperEvent) bool {
				return len(evts) == 1 &&
					evts[0].Kind == domain.EventAddedToCart &&
					evts[0].ProductID == "1"
			},
		)).Return(nil).Once()

		s := service.NewCarts(seedRepo(), producer)
		err := s.AddLine(t.Context(), "sess", domain.CartLine{
			ProductID: "1", Size: "L", Color: "Black", Quantity: 1,
		})
		require.NoError(t, err)
		producer.AssertExpectations(t)
	})

	t.Run("ProducerFailureDoesNotFailEdit", func(t *testing.T) {
		producer := new(MockEventsProducer)
		producer.On("ProduceEvents", mock.Anything, mock.Anything).
			Return(assert.AnError)

		s := service.NewCarts(seedRepo(), producer)
		err := s.AddLine(t.Context(), "sess", domain.CartLine{
			ProductID: "1", Size: "L", Color: "Black", Quantity: 1,
		})
		require.NoError(t, err)
		assert.Len(t, s.Cart("sess").Lines, 1)
	})
}

func TestCartsTotals(t *testing.T) {
	s, _ := newCarts(t)

	require.NoError(t, s.AddLine(t.Context(), "sess", domain.CartLine{
		ProductID: "1", Size: "L", Color: "Black", Quantity: 1,
	}))
	require.NoError(t, s.AddLine(t.Context(), "sess", domain.CartLine{
		ProductID: "5", Size: "M", Color: "Black", Quantity: 2,
	}))

	sum, err := s.Totals(t.Context(), "sess")
	require.NoError(t, err)
	assert.Equal(t, int64(20100), sum.Subtotal)
	assert.Equal(t, int64(0), sum.Shipping)
	assert.Equal(t, int64(20100), sum.Total)

	s.ApplyPromo("sess", "Cocoa10")
	sum, err = s.Totals(t.Context(), "sess")
	require.NoError(t, err)
	assert.Equal(t, int64(2010), sum.Discount)
	assert.Equal(t, int64(18090), sum.Total)

	// reapplication changes nothing
	s.ApplyPromo("sess", "cocoa10")
	again, err := s.Totals(t.Context(), "sess")
	require.NoError(t, err)
	assert.Equal(t, sum, again)
}

func TestCartsQuantityAndRemove(t *testing.T) {
	s, _ := newCarts(t)

	require.NoError(t, s.AddLine(t.Context(), "sess", domain.CartLine{
		ProductID: "1", Size: "L", Color: "Black", Quantity: 2,
	}))

	s.UpdateQuantity("sess", 0, 0)
	assert.Equal(t, 2, s.Cart("sess").Lines[0].Quantity)

	s.UpdateQuantity("sess", 0, 4)
	assert.Equal(t, 4, s.Cart("sess").Lines[0].Quantity)

	s.RemoveLine("sess", 0)
	assert.Empty(t, s.Cart("sess").Lines)
}

func TestCartsWishlist(t *testing.T) {
	s, _ := newCarts(t)

	assert.True(t, s.ToggleWishlist("sess", "1"))
	assert.True(t, s.ToggleWishlist("sess", "2"))
	assert.Equal(t, []string{"1", "2"}, s.Wishlist("sess"))

	assert.False(t, s.ToggleWishlist("sess", "1"))
	assert.Equal(t, []string{"2"}, s.Wishlist("sess"))
}
