package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/logging"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

// PromoCache is satisfied by cache.PromotionCache. Nil disables caching; the
// service then reads straight from the store.
type PromoCache interface {
	Get(ctx context.Context, code string) (*models.Promotion, error)
	Set(ctx context.Context, promo *models.Promotion) error
	Invalidate(ctx context.Context, code string) error
}

type PromotionService struct {
	Repo  *repo.GormRepo
	Cache PromoCache
}

func validDiscountType(t string) bool {
	return t == models.DiscountTypePercentage || t == models.DiscountTypeFixed
}

func (s *PromotionService) Create(ctx context.Context, req transport.CreatePromotionRequest) (*models.Promotion, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: code required", ErrValidation)
	}
	if !validDiscountType(req.DiscountType) {
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrValidation, req.DiscountType)
	}
	if req.DiscountValue < 0 {
		return nil, fmt.Errorf("%w: discount value must be >= 0", ErrValidation)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if req.MaxUses < 0 {
		return nil, fmt.Errorf("%w: max uses must be >= 0", ErrValidation)
	}

	if _, err := s.Repo.GetPromotionByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("%w: code %q already exists", ErrConflict, req.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Repo.CreatePromotion(ctx, &models.Promotion{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MaxUses:       req.MaxUses,
	})
}

func (s *PromotionService) Get(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	return s.Repo.GetPromotion(ctx, id)
}

func (s *PromotionService) List(ctx context.Context, offset, limit int) (int64, []models.Promotion, error) {
	return s.Repo.GetPromotions(ctx, offset, limit)
}

func (s *PromotionService) Patch(ctx context.Context, req transport.PatchPromotionRequest, id uuid.UUID) (*models.Promotion, error) {
	promo, err := s.Repo.GetPromotion(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DiscountType != nil {
		if !validDiscountType(*req.DiscountType) {
			return nil, fmt.Errorf("%w: unknown discount type %q", ErrValidation, *req.DiscountType)
		}
		promo.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		if *req.DiscountValue < 0 {
			return nil, fmt.Errorf("%w: discount value must be >= 0", ErrValidation)
		}
		promo.DiscountValue = *req.DiscountValue
	}
	if req.StartDate != nil {
		promo.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		promo.EndDate = *req.EndDate
	}
	if !promo.EndDate.After(promo.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if req.MaxUses != nil {
		if *req.MaxUses < 0 {
			return nil, fmt.Errorf("%w: max uses must be >= 0", ErrValidation)
		}
		promo.MaxUses = *req.MaxUses
	}

	promo, err = s.Repo.SavePromotion(ctx, promo)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, promo.Code)
	return promo, nil
}

func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	promo, err := s.Repo.GetPromotion(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeletePromotion(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, promo.Code)
	return nil
}

// ResolveRedeemable looks a promotion up by code, preferring the cache, and
// verifies it can be applied right now. Unknown codes map to ErrNotFound and
// expired or exhausted ones to ErrValidation.
func (s *PromotionService) ResolveRedeemable(ctx context.Context, code string, now time.Time) (*models.Promotion, error) {
	promo, err := s.lookup(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: promotion %q", ErrNotFound, code)
		}
		return nil, err
	}
	if !promo.Redeemable(now) {
		return nil, fmt.Errorf("%w: promotion %q is not redeemable", ErrValidation, code)
	}
	return promo, nil
}

// Redeem consumes one use of the promotion.
func (s *PromotionService) Redeem(ctx context.Context, promo *models.Promotion) error {
	if err := s.Repo.IncrementPromotionUsage(ctx, promo.ID); err != nil {
		return err
	}
	s.invalidate(ctx, promo.Code)
	return nil
}

func (s *PromotionService) lookup(ctx context.Context, code string) (*models.Promotion, error) {
	if s.Cache != nil {
		promo, err := s.Cache.Get(ctx, code)
		if err != nil {
			logging.FromContext(ctx).Warn("promotion cache read failed", "code", code, "error", err)
		} else if promo != nil {
			return promo, nil
		}
	}

	promo, err := s.Repo.GetPromotionByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, promo); err != nil {
			logging.FromContext(ctx).Warn("promotion cache write failed", "code", code, "error", err)
		}
	}
	return promo, nil
}

func (s *PromotionService) invalidate(ctx context.Context, code string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, code); err != nil {
		logging.FromContext(ctx).Warn("promotion cache invalidate failed", "code", code, "error", err)
	}
}
