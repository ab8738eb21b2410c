package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/events"
	"github.com/thepKz/gender-care-sub009/internal/metrics"
	"github.com/thepKz/gender-care-sub009/internal/models"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Promos   *PromotionService
	Producer EventPublisher
	Now      func() time.Time
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func validOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered,
		models.OrderStatusCancelled:
		return true
	}
	return false
}

// CreateOrder resolves every line item against the catalog, applies an
// optional promotion code and persists the order as pending. An unknown or
// non-redeemable code rejects the order; it is never silently dropped.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest, userID uuid.UUID) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for i := range req.Items {
		if req.Items[i].ProductID == uuid.Nil {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if req.Items[i].Quantity == 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}

		prod, err := s.Repo.GetProduct(ctx, req.Items[i].ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, req.Items[i].ProductID)
			}
			return nil, err
		}

		lineTotal := prod.Price * float64(req.Items[i].Quantity)
		items = append(items, models.OrderItem{
			ProductID: prod.ID,
			Quantity:  req.Items[i].Quantity,
			UnitPrice: prod.Price,
			LineTotal: lineTotal,
		})
		subtotal += lineTotal
	}

	var (
		promo    *models.Promotion
		discount float64
	)
	if req.PromotionCode != "" {
		var err error
		promo, err = s.Promos.ResolveRedeemable(ctx, req.PromotionCode, s.now())
		if err != nil {
			return nil, err
		}
		discount = promo.Discount(subtotal)
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	order := &models.Order{
		UserID:   userID,
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Status:   models.OrderStatusPending,
		Items:    items,
	}
	if promo != nil {
		order.PromotionID = &promo.ID
		order.PromotionCode = promo.Code
	}

	order, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if promo != nil {
		if err := s.Promos.Redeem(ctx, promo); err != nil {
			return nil, fmt.Errorf("redeem promotion %q: %w", promo.Code, err)
		}
		metrics.PromotionsRedeemed.Inc()
	}
	metrics.OrdersCreated.Inc()

	publish(ctx, s.Producer, events.TopicOrderEvents, order.ID.String(), map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  order.UserID,
		"total":    order.Total,
	})
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, offset, limit int) (int64, []models.Order, error) {
	return s.Repo.GetOrders(ctx, offset, limit)
}

func (s *OrderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID, offset, limit int) (int64, []models.Order, error) {
	return s.Repo.GetOrdersByUser(ctx, userID, offset, limit)
}

func (s *OrderService) SearchOrders(ctx context.Context, status string, userID *uuid.UUID, offset, limit int) (int64, []models.Order, error) {
	if status != "" && !validOrderStatus(status) {
		return 0, nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.Repo.SearchOrders(ctx, status, userID, offset, limit)
}

// UpdateStatus accepts any enum value from any current value; there is no
// transition state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	if !validOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if err := s.Repo.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Producer, events.TopicOrderEvents, order.ID.String(), map[string]any{
		"type":     "order_status_updated",
		"order_id": order.ID,
		"status":   order.Status,
	})
	return order, nil
}
