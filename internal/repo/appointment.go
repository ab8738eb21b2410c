package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/models"
)

func (r *GormRepo) CreateAppointment(ctx context.Context, app *models.Appointment) (*models.Appointment, error) {
	if err := r.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (r *GormRepo) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	app := models.Appointment{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *GormRepo) GetAppointmentsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) (int64, []models.Appointment, error) {
	q := r.DB.WithContext(ctx).Model(&models.Appointment{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Appointment
	if err := q.Order("scheduled_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
