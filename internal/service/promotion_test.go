package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

func TestPromotionService_Create(t *testing.T) {
	svc := &PromotionService{Repo: newTestRepo(t)}
	ctx := t.Context()

	start := time.Now().UTC()
	end := start.Add(24 * time.Hour)

	promo, err := svc.Create(ctx, transport.CreatePromotionRequest{
		Code:          "WELCOME10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     start,
		EndDate:       end,
		MaxUses:       100,
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", promo.Code)
	assert.Equal(t, 0, promo.UsedCount)
}

func TestPromotionService_Create_Validation(t *testing.T) {
	svc := &PromotionService{Repo: newTestRepo(t)}
	ctx := t.Context()

	start := time.Now().UTC()

	tests := []struct {
		name string
		req  transport.CreatePromotionRequest
	}{
		{name: "empty code", req: transport.CreatePromotionRequest{
			DiscountType: models.DiscountTypeFixed, DiscountValue: 5,
			StartDate: start, EndDate: start.Add(time.Hour),
		}},
		{name: "end before start", req: transport.CreatePromotionRequest{
			Code: "BADWINDOW", DiscountType: models.DiscountTypeFixed, DiscountValue: 5,
			StartDate: start, EndDate: start.Add(-time.Hour),
		}},
		{name: "end equals start", req: transport.CreatePromotionRequest{
			Code: "ZEROWINDOW", DiscountType: models.DiscountTypeFixed, DiscountValue: 5,
			StartDate: start, EndDate: start,
		}},
		{name: "unknown discount type", req: transport.CreatePromotionRequest{
			Code: "WEIRD", DiscountType: "lottery", DiscountValue: 5,
			StartDate: start, EndDate: start.Add(time.Hour),
		}},
		{name: "negative value", req: transport.CreatePromotionRequest{
			Code: "NEGATIVE", DiscountType: models.DiscountTypeFixed, DiscountValue: -5,
			StartDate: start, EndDate: start.Add(time.Hour),
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPromotionService_Create_DuplicateCode(t *testing.T) {
	svc := &PromotionService{Repo: newTestRepo(t)}
	ctx := t.Context()

	start := time.Now().UTC()
	req := transport.CreatePromotionRequest{
		Code:          "DOUBLE",
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 5,
		StartDate:     start,
		EndDate:       start.Add(time.Hour),
	}

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPromotionService_ResolveRedeemable(t *testing.T) {
	r := newTestRepo(t)
	svc := &PromotionService{Repo: r}
	ctx := t.Context()
	now := time.Now().UTC()

	createTestPromotion(t, r, "LIVE", models.DiscountTypePercentage, 10, 0)

	promo, err := svc.ResolveRedeemable(ctx, "LIVE", now)
	require.NoError(t, err)
	assert.Equal(t, "LIVE", promo.Code)

	_, err = svc.ResolveRedeemable(ctx, "MISSING", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// outside the window
	_, err = svc.ResolveRedeemable(ctx, "LIVE", now.Add(48*time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPromotionService_Redeem(t *testing.T) {
	r := newTestRepo(t)
	svc := &PromotionService{Repo: r}
	ctx := t.Context()

	promo := createTestPromotion(t, r, "COUNTME", models.DiscountTypeFixed, 5, 3)

	require.NoError(t, svc.Redeem(ctx, promo))
	require.NoError(t, svc.Redeem(ctx, promo))

	got, err := r.GetPromotion(ctx, promo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UsedCount)
}

func TestPromotionService_Patch_WindowStaysOrdered(t *testing.T) {
	r := newTestRepo(t)
	svc := &PromotionService{Repo: r}
	ctx := t.Context()

	promo := createTestPromotion(t, r, "SHIFTY", models.DiscountTypeFixed, 5, 0)

	badEnd := promo.StartDate.Add(-time.Hour)
	_, err := svc.Patch(ctx, transport.PatchPromotionRequest{EndDate: &badEnd}, promo.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
