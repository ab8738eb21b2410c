package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/events"
	"github.com/thepKz/gender-care-sub009/internal/metrics"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

type PaymentService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
}

func validPaymentMethod(m string) bool {
	switch m {
	case models.PaymentMethodCreditCard, models.PaymentMethodWallet, models.PaymentMethodBankTransfer:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch s {
	case models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusFailed:
		return true
	}
	return false
}

// Create records a pending payment against an existing order. The amount is
// taken as given; it is not checked against the order total.
func (s *PaymentService) Create(ctx context.Context, req transport.CreatePaymentRequest) (*models.Payment, error) {
	if req.OrderID == uuid.Nil {
		return nil, fmt.Errorf("%w: order_id required", ErrValidation)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be >= 0", ErrValidation)
	}
	if !validPaymentMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.Method)
	}

	if _, err := s.Repo.GetOrder(ctx, req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, req.OrderID)
		}
		return nil, err
	}

	payment, err := s.Repo.CreatePayment(ctx, &models.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  models.PaymentStatusPending,
	})
	if err != nil {
		return nil, err
	}
	metrics.PaymentsRecorded.Inc()

	publish(ctx, s.Producer, events.TopicPaymentEvents, payment.ID.String(), map[string]any{
		"type":       "payment_created",
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
	})
	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return s.Repo.GetPayment(ctx, id)
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error) {
	return s.Repo.GetPaymentsByOrder(ctx, orderID)
}

// UpdateStatus sets any enum value regardless of the current one.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Payment, error) {
	if !validPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if err := s.Repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	payment, err := s.Repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Producer, events.TopicPaymentEvents, payment.ID.String(), map[string]any{
		"type":       "payment_status_updated",
		"payment_id": payment.ID,
		"status":     payment.Status,
	})
	return payment, nil
}
