package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newWindowPromotion(start, end time.Time) *Promotion {
	return &Promotion{
		Code:          "SPRING",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     start,
		EndDate:       end,
	}
}

func TestPromotion_InWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	promo := newWindowPromotion(start, end)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "before window", now: start.Add(-time.Second), want: false},
		{name: "at start", now: start, want: true},
		{name: "inside window", now: start.AddDate(0, 0, 15), want: true},
		{name: "at end", now: end, want: true},
		{name: "after window", now: end.Add(time.Second), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, promo.InWindow(tt.now))
		})
	}
}

func TestPromotion_Redeemable_UsageLimit(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 10)

	promo := newWindowPromotion(start, end)
	promo.MaxUses = 2

	promo.UsedCount = 0
	assert.True(t, promo.Redeemable(now))

	promo.UsedCount = 1
	assert.True(t, promo.Redeemable(now))

	promo.UsedCount = 2
	assert.False(t, promo.Redeemable(now))

	// zero max uses means unlimited
	promo.MaxUses = 0
	promo.UsedCount = 1000
	assert.True(t, promo.Redeemable(now))

	// window still applies with remaining uses
	promo.MaxUses = 5
	promo.UsedCount = 0
	assert.False(t, promo.Redeemable(end.Add(time.Hour)))
}

func TestPromotion_Discount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		discountType string
		value        float64
		subtotal     float64
		want         float64
	}{
		{name: "ten percent of 250", discountType: DiscountTypePercentage, value: 10, subtotal: 250, want: 25},
		{name: "fixed 20", discountType: DiscountTypeFixed, value: 20, subtotal: 250, want: 20},
		{name: "fixed larger than subtotal caps", discountType: DiscountTypeFixed, value: 300, subtotal: 250, want: 250},
		{name: "unknown type gives nothing", discountType: "mystery", value: 50, subtotal: 250, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			promo := &Promotion{DiscountType: tt.discountType, DiscountValue: tt.value}
			assert.InDelta(t, tt.want, promo.Discount(tt.subtotal), 1e-9)
		})
	}
}
