package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

type CareService struct {
	Repo *repo.GormRepo
}

func validServiceType(t string) bool {
	return t == models.ServiceTypeConsultation || t == models.ServiceTypeTest || t == models.ServiceTypeTreatment
}

func (s *CareService) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	return s.Repo.GetService(ctx, id)
}

func (s *CareService) ListServices(ctx context.Context, offset, limit int) (int64, []models.Service, error) {
	return s.Repo.GetServices(ctx, offset, limit)
}

func (s *CareService) CreateService(ctx context.Context, req transport.CreateServiceRequest) (*models.Service, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if !validServiceType(req.Type) {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, req.Type)
	}

	return s.Repo.CreateService(ctx, &models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		AtHome:      req.AtHome,
		AtClinic:    req.AtClinic,
		Online:      req.Online,
	})
}

func (s *CareService) PatchService(ctx context.Context, req transport.PatchServiceRequest, id uuid.UUID) (*models.Service, error) {
	svc, err := s.Repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name required", ErrValidation)
		}
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		svc.Price = *req.Price
	}
	if req.Type != nil {
		if !validServiceType(*req.Type) {
			return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, *req.Type)
		}
		svc.Type = *req.Type
	}
	if req.AtHome != nil {
		svc.AtHome = *req.AtHome
	}
	if req.AtClinic != nil {
		svc.AtClinic = *req.AtClinic
	}
	if req.Online != nil {
		svc.Online = *req.Online
	}

	return s.Repo.SaveService(ctx, svc)
}

// DeleteService soft-deletes; the row stays in the store flagged is_deleted.
func (s *CareService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.Repo.SoftDeleteService(ctx, id)
}

func (s *CareService) GetPackage(ctx context.Context, id uuid.UUID) (*models.ServicePackage, error) {
	return s.Repo.GetServicePackage(ctx, id)
}

func (s *CareService) ListPackages(ctx context.Context, offset, limit int) (int64, []models.ServicePackage, error) {
	return s.Repo.GetServicePackages(ctx, offset, limit)
}

func (s *CareService) CreatePackage(ctx context.Context, req transport.CreateServicePackageRequest) (*models.ServicePackage, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if len(req.ServiceIDs) == 0 {
		return nil, fmt.Errorf("%w: service_ids required", ErrValidation)
	}

	items := make([]models.ServicePackageItem, 0, len(req.ServiceIDs))
	for _, sid := range req.ServiceIDs {
		if _, err := s.Repo.GetService(ctx, sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: service %s", ErrNotFound, sid)
			}
			return nil, err
		}
		items = append(items, models.ServicePackageItem{ServiceID: sid})
	}

	return s.Repo.CreateServicePackage(ctx, &models.ServicePackage{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
		Items:       items,
	})
}

func (s *CareService) PatchPackage(ctx context.Context, req transport.PatchServicePackageRequest, id uuid.UUID) (*models.ServicePackage, error) {
	pkg, err := s.Repo.GetServicePackage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name required", ErrValidation)
		}
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		pkg.Price = *req.Price
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	return s.Repo.SaveServicePackage(ctx, pkg)
}

func (s *CareService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteServicePackage(ctx, id)
}
