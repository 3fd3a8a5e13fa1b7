package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		tier   Tier
	}{
		{"opening time", 8, 0, TierMorning},
		{"late morning", 11, 59, TierMorning},
		{"noon", 12, 0, TierAfternoon},
		{"late afternoon", 16, 59, TierAfternoon},
		{"five pm", 17, 0, TierEvening},
		{"last minute of the day", 23, 59, TierEvening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := TierFor(at(tt.hour, tt.minute))

			require.NoError(t, err)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestTierFor_BeforeOpening(t *testing.T) {
	_, err := TierFor(at(7, 59))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPriceTier)
}

func TestBookingPrice(t *testing.T) {
	city := &City{
		Name:           "Bristol",
		MorningPrice:   6.00,
		AfternoonPrice: 7.00,
		EveningPrice:   8.00,
	}

	t.Run("lower and upper at morning price", func(t *testing.T) {
		cheap := &City{MorningPrice: 5.00, AfternoonPrice: 6.00, EveningPrice: 7.00}

		price, err := BookingPrice(cheap, at(9, 0), 1, 2, 0)

		require.NoError(t, err)
		// 5.00*1 + 5.00*2*1.2
		assert.Equal(t, 17.00, price)
	})

	t.Run("vip only at evening price", func(t *testing.T) {
		price, err := BookingPrice(city, at(17, 0), 0, 0, 3)

		require.NoError(t, err)
		// (8.00*3*1.2)*1.2
		assert.Equal(t, 34.56, price)
	})

	t.Run("afternoon tier used for afternoon start", func(t *testing.T) {
		price, err := BookingPrice(city, at(12, 0), 2, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 14.00, price)
	})

	t.Run("tier comes from start time even when showing straddles tiers", func(t *testing.T) {
		// An 11:00 start is priced as morning regardless of the film running
		// into the afternoon.
		price, err := BookingPrice(city, at(11, 0), 1, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 6.00, price)
	})

	t.Run("rounds half up on the final result only", func(t *testing.T) {
		odd := &City{MorningPrice: 1.07}

		price, err := BookingPrice(odd, at(9, 0), 0, 1, 1)

		require.NoError(t, err)
		// 1.07*1.2 = 1.284, 1.07*1.44 = 1.5408, sum 2.8248 -> 2.82
		assert.Equal(t, 2.82, price)
	})

	t.Run("no tier before opening", func(t *testing.T) {
		_, err := BookingPrice(city, at(3, 0), 1, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoPriceTier)
	})

	t.Run("zero seats price to zero", func(t *testing.T) {
		price, err := BookingPrice(city, at(9, 0), 0, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0.00, price)
	})
}
