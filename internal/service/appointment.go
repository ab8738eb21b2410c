package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

type AppointmentService struct {
	Repo *repo.GormRepo
	Now  func() time.Time
}

func (s *AppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func validAppointmentStatus(status string) bool {
	switch status {
	case models.AppointmentStatusScheduled, models.AppointmentStatusCompleted, models.AppointmentStatusCancelled:
		return true
	}
	return false
}

func (s *AppointmentService) Create(ctx context.Context, req transport.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if req.ServiceID == uuid.Nil {
		return nil, fmt.Errorf("%w: service_id required", ErrValidation)
	}
	if !req.ScheduledAt.After(s.now()) {
		return nil, fmt.Errorf("%w: scheduled_at must be in the future", ErrValidation)
	}

	// GetService already excludes soft-deleted services.
	if _, err := s.Repo.GetService(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %s", ErrNotFound, req.ServiceID)
		}
		return nil, err
	}

	return s.Repo.CreateAppointment(ctx, &models.Appointment{
		UserID:      req.UserID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Channel:     req.Channel,
		Note:        req.Note,
		Status:      models.AppointmentStatusScheduled,
	})
}

func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return s.Repo.GetAppointment(ctx, id)
}

func (s *AppointmentService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) (int64, []models.Appointment, error) {
	return s.Repo.GetAppointmentsByUser(ctx, userID, offset, limit)
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Appointment, error) {
	if !validAppointmentStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if err := s.Repo.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.Repo.GetAppointment(ctx, id)
}
