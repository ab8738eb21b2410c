package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/models"
)

func (r *GormRepo) GetPromotion(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	promo := models.Promotion{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *GormRepo) GetPromotionByCode(ctx context.Context, code string) (*models.Promotion, error) {
	promo := models.Promotion{}
	if err := r.DB.WithContext(ctx).Where("code = ?", code).First(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *GormRepo) GetPromotions(ctx context.Context, offset, limit int) (int64, []models.Promotion, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Promotion{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Promotion
	if err := r.DB.WithContext(ctx).Model(&models.Promotion{}).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) CreatePromotion(ctx context.Context, promo *models.Promotion) (*models.Promotion, error) {
	if err := r.DB.WithContext(ctx).Create(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

func (r *GormRepo) SavePromotion(ctx context.Context, promo *models.Promotion) (*models.Promotion, error) {
	if err := r.DB.WithContext(ctx).Save(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

func (r *GormRepo) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Promotion{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementPromotionUsage bumps used_count atomically in the store.
func (r *GormRepo) IncrementPromotionUsage(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Model(&models.Promotion{}).
		Where("id = ?", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
