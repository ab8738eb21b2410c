package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/models"
)

func (r *GormRepo) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	svc := models.Service{}
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// GetServices excludes soft-deleted rows.
func (r *GormRepo) GetServices(ctx context.Context, offset, limit int) (int64, []models.Service, error) {
	q := r.DB.WithContext(ctx).Model(&models.Service{}).Where("is_deleted = ?", false)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Service
	if err := q.Order("name ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) CreateService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := r.DB.WithContext(ctx).Create(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *GormRepo) SaveService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if err := r.DB.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

// SoftDeleteService flags the row instead of removing it.
func (r *GormRepo) SoftDeleteService(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Model(&models.Service{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetServicePackage(ctx context.Context, id uuid.UUID) (*models.ServicePackage, error) {
	pkg := models.ServicePackage{}
	if err := r.DB.WithContext(ctx).Preload("Items").
		Where("id = ?", id).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *GormRepo) GetServicePackages(ctx context.Context, offset, limit int) (int64, []models.ServicePackage, error) {
	q := r.DB.WithContext(ctx).Model(&models.ServicePackage{}).Where("is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.ServicePackage
	if err := q.Preload("Items").Order("name ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) CreateServicePackage(ctx context.Context, pkg *models.ServicePackage) (*models.ServicePackage, error) {
	if err := r.DB.WithContext(ctx).Create(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *GormRepo) SaveServicePackage(ctx context.Context, pkg *models.ServicePackage) (*models.ServicePackage, error) {
	if err := r.DB.WithContext(ctx).Save(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *GormRepo) DeleteServicePackage(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Model(&models.ServicePackage{}).
		Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
