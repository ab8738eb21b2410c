package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/models"
)

func (r *GormRepo) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if err := r.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *GormRepo) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment := models.Payment{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *GormRepo) GetPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error) {
	var items []models.Payment
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).
		Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
